//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Filter struct {
	Query string
	Limit int
}

var NewFilter = buildgen.Struct[Filter](nil,
	buildgen.Optional(Filter{}.Query),
	buildgen.Default(Filter{}.Limit, 50),
)
