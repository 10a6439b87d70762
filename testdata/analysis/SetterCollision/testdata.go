//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Article struct {
	Slug  string
	Title string
}

type Report struct {
	Build string
	Year  int
}

var NewArticle = buildgen.Struct[Article](nil, // want `setter Title for member Title is already taken by member Slug; rename it with buildgen\.Rename`
	buildgen.Rename(Article{}.Slug, "Title"),
)

var NewReport = buildgen.Struct[Report](nil) // want `setter Build for member Build collides with the finisher; rename either one`
