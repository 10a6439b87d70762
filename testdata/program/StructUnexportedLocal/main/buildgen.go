//go:build buildgen

package main

import "github.com/sublee/buildgen"

type secret struct {
	key   string
	shown bool
}

var newSecret = buildgen.Struct[secret](nil)
