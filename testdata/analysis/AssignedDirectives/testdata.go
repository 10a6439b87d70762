//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Post struct {
	Title string
	Body  string
}

var optTitle = buildgen.Optional(Post{}.Title) // want `cannot assign Optional to variable`

var NewPost = buildgen.Struct[Post](nil,
	optTitle, // want `option must be inlined, not assigned to variable`
)

func assign() {
	rename := buildgen.Rename(Post{}.Body, "Content") // want `cannot assign Rename to variable`
	_ = rename
}
