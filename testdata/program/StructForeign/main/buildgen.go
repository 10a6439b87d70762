//go:build buildgen

package main

import (
	"example.com/StructForeign/main/api"

	"github.com/sublee/buildgen"
)

var NewArticle = buildgen.Struct[api.Article](nil)
