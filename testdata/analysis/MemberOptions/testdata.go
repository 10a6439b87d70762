//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Post struct {
	Title string
	Body  string
	Views int
	Tags  []string
}

var NewPost = buildgen.Struct[Post](nil,
	buildgen.Name("newPost"), // want `builder name must be an exported identifier; got "newPost"`
	buildgen.Name("PostBuilder"),
	buildgen.Name("PostFactory"), // want `builder name already configured`

	buildgen.Finish("assemble"), // want `finisher name must be an exported identifier; got "assemble"`

	buildgen.SetterPrefix("with"), // want `setter prefix must be an exported identifier; got "with"`

	buildgen.Rename(Post{}.Title, "headline"), // want `setter name must be an exported identifier; got "headline"`
	buildgen.Rename(Post{}.Title, "Headline"),
	buildgen.Rename(Post{}.Title, "Subject"), // want `setter name for Title already configured`

	buildgen.Optional(Post{}.Body),
	buildgen.Required(Post{}.Body), // want `Optional/Required for Body already configured`

	buildgen.Required(Post{}.Views),
	buildgen.Default(Post{}.Views, 100), // want `cannot default Views; it is required`

	buildgen.Default(Post{}.Tags, []string{"news"}),
	buildgen.Required(Post{}.Tags), // want `cannot require Tags; it has a default`

	buildgen.Optional(nil), // want `cannot use nil as member`

	buildgen.Default(Post{}.Views, "many"), // want `cannot use "many" \(string\) as default for int member`
)
