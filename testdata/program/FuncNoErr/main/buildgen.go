//go:build buildgen

package main

import (
	"strings"

	"github.com/sublee/buildgen"
)

func banner(text string, width int) string {
	pad := (width - len(text)) / 2
	return strings.Repeat("=", pad) + text + strings.Repeat("=", pad)
}

var Banner = buildgen.Func(banner, nil)
