package services

import (
	_ "embed"
)

// indexPage is the single-page UI served at "/".
//
//go:embed template/index.html
var indexPage []byte

// IndexPage - 루트 경로에서 반환할 HTML 문서
// The returned slice is shared; callers must not modify it.
func IndexPage() []byte {
	return indexPage
}
