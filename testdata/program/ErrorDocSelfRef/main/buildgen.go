//go:build buildgen

package main

import (
	"example.com/ErrorDocSelfRef/main/api"

	"github.com/sublee/buildgen"
)

var NewArticle = buildgen.Struct[api.Article](nil)
