//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Post struct {
	Title string
}

var NewPost = buildgen.Struct[Post](nil)

func premature() Post {
	return NewPost() // want `cannot use builder "NewPost" in buildgen files; replaced at code generation`
}
