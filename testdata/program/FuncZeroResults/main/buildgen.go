//go:build buildgen

package main

import "github.com/sublee/buildgen"

var lines []string

func record(line string) {
	lines = append(lines, line)
}

var Record = buildgen.Func(record, nil)
