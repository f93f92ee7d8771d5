package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrMissingParameter matches any ValidationError caused by an absent or empty
// required parameter.
var ErrMissingParameter = errors.New("missing required parameter")

const (
	locQuery = "query"

	errTypeMissing = "missing"
	errTypeValue   = "value_error"
)

// ValidationError - 요청 파라미터 검증 실패
type ValidationError struct {
	Items []ValidationErrorItem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		msgs = append(msgs, fmt.Sprintf("%s: %s", strings.Join(item.Loc, "."), item.Msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	if target != ErrMissingParameter {
		return false
	}
	for _, item := range e.Items {
		if item.Type == errTypeMissing {
			return true
		}
	}
	return false
}

func init() {
	// Report fields by their query name instead of the Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(formTagName)
	}
}

func formTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// bindEchoRequest extracts and validates the echo query parameters.
// When a parameter is repeated the last value wins.
func bindEchoRequest(c *gin.Context) (EchoRequest, error) {
	var req EchoRequest
	if values := c.QueryArray("message"); len(values) > 0 {
		req.Message = values[len(values)-1]
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, toValidationError(err)
	}
	return req, nil
}

// toValidationError maps binding failures into query-located items.
func toValidationError(err error) *ValidationError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return newValueError(err)
	}

	items := make([]ValidationErrorItem, 0, len(ve))
	for _, fe := range ve {
		item := ValidationErrorItem{
			Loc: []string{locQuery, fe.Field()},
		}
		switch fe.Tag() {
		case "required":
			item.Type = errTypeMissing
			item.Msg = "Field required"
		default:
			item.Type = fe.Tag()
			item.Msg = fmt.Sprintf("Failed on '%s' validation", fe.Tag())
			item.Input = fe.Value()
		}
		items = append(items, item)
	}
	return &ValidationError{Items: items}
}

func newValueError(err error) *ValidationError {
	return &ValidationError{Items: []ValidationErrorItem{{
		Type: errTypeValue,
		Loc:  []string{locQuery},
		Msg:  err.Error(),
	}}}
}

// NotFound answers requests for unknown paths
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
}

// MethodNotAllowed answers requests for known paths with an unsupported method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
}
