//go:build buildgen

package main

import "github.com/sublee/buildgen"

type Post struct {
	Title string
	Body  string
	Draft bool
}

var NewPost = buildgen.Struct[Post](nil)
