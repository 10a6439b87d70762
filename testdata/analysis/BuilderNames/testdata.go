//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Post struct {
	Title string
}

type PostBuilder struct{}

var NewPost = buildgen.Struct[Post](nil,
	buildgen.Name("PostBuilder"), // want `cannot name builder PostBuilder; already declared`
)

var NewDraft = buildgen.Struct[Post](nil,
	buildgen.Name("DraftBuilder"),
)

var NewDraft2 = buildgen.Struct[Post](nil,
	buildgen.Name("DraftBuilder"), // want `cannot name builder DraftBuilder; already declared`
)
