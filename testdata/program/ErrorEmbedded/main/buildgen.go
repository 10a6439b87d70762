//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Header struct {
	Tag string
}

type Frame struct {
	Header
	Size int
}

var NewFrame = buildgen.Struct[Frame](nil)
