//go:build buildgen

package main

import (
	"time"

	"github.com/sublee/buildgen"
)

type Server struct {
	Addr    string
	Timeout time.Duration
	Workers int
}

var NewServer = buildgen.Struct[Server](nil,
	buildgen.Default(Server{}.Timeout, 30*time.Second),
	buildgen.Default(Server{}.Workers, 4),
)
