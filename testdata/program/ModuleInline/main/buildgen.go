//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Tag struct {
	Label string
}

var NewTag = buildgen.Struct[Tag](buildgen.Module(
	buildgen.SetterPrefix("Set"),
))
