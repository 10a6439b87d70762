//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Doc struct {
	Build string
}

type Form struct {
	Submit string
}

var (
	NewDoc  = buildgen.Struct[Doc](nil)
	NewForm = buildgen.Struct[Form](nil,
		buildgen.Finish("Submit"),
	)
)
