//go:build buildgen

package main

import "github.com/sublee/buildgen"

type A struct {
	N int
}

type B struct {
	S string
}

var origin, NewA = "mixed", buildgen.Struct[A](nil)

var (
	NewB    = buildgen.Struct[B](nil)
	version = 3
)
