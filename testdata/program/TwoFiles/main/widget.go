//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Widget struct {
	Name string
}

var NewWidget = buildgen.Struct[Widget](nil)
