//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Token struct {
	Value string
}

var NewToken = buildgen.Struct[Token](nil)
