//go:build buildgen

package main

import (
	"strings"

	"github.com/sublee/buildgen"
)

func listOf(sep string, items ...string) string {
	return strings.Join(items, sep)
}

var ListOf = buildgen.Func(listOf, nil)
