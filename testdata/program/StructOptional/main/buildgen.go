//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Profile struct {
	Name     string
	Nickname string
	Age      *int
}

var NewProfile = buildgen.Struct[Profile](nil,
	buildgen.Optional(Profile{}.Nickname),
)
