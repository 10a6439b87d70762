//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Post struct {
	Title string
}

func asis[T any](v T) T { return v }

var prefix = buildgen.SetterPrefix("With") // want `cannot assign SetterPrefix to variable`

var NewPost = buildgen.Struct[Post](nil,
	prefix, // want `option must be inlined, not assigned to variable`

	asis(buildgen.SetterPrefix("With")), // want `option must be buildgen directive`

	buildgen.SetterPrefix("With"),   // ok
	(buildgen.SetterPrefix("With")), // ok
)
