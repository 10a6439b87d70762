//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Note struct {
	Text string
	By   *string
}

var NewNote = buildgen.Struct[Note](nil,
	buildgen.Required(Note{}.By),
)
