//go:build buildgen

package main

import (
	"time"

	"github.com/sublee/buildgen"
)

var NewClient = buildgen.Struct[Client](nil,
	buildgen.Default(Client{}.Timeout, 10*time.Second),
	buildgen.Default(Client{}.Retries, 3),
	buildgen.Optional(Client{}.UserAgent),
)
