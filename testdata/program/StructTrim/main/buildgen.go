//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Config struct {
	ServerHost string
	ServerPort int
}

var NewConfig = buildgen.Struct[Config](nil,
	buildgen.RenameTrimCommonWordPrefix(true),
)
