//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Circle struct {
	Radius float64
}

type Square struct {
	Side float64
}

var mod = buildgen.Module(
	buildgen.SetterPrefix("With"),
	buildgen.Finish("Make"),
)

var (
	NewCircle = buildgen.Struct[Circle](mod)
	NewSquare = buildgen.Struct[Square](mod,
		buildgen.Finish("Cut"),
	)
)
