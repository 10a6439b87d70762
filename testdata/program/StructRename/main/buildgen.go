//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Request struct {
	Method string
	URL    string
	Body   string
}

var NewRequest = buildgen.Struct[Request](nil,
	buildgen.Name("RequestDraft"),
	buildgen.Finish("Send"),
	buildgen.SetterPrefix("With"),
	buildgen.Rename(Request{}.Body, "Payload"),
)
