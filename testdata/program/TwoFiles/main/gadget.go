//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Gadget struct {
	Kind string
}

var NewGadget = buildgen.Struct[Gadget](nil)
