//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

var NewPair = buildgen.Struct[Pair[string, int]](nil)
