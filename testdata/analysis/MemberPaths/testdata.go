//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Author struct {
	Name string
}

type Post struct {
	Title  string
	Author Author
}

func (p Post) Clone() Post { return p }

type Draft struct {
	Title string
}

func publish(title string, notify bool) error { return nil }

var NewPost = buildgen.Struct[Post](nil,
	buildgen.Optional(Post{}.Title),       // ok
	buildgen.Optional((&Post{}).Title),    // ok
	buildgen.Optional((*Post)(nil).Title), // ok

	buildgen.Optional("Title"),            // want `"Title" is not a member of Post`
	buildgen.Optional(Post{}.Author.Name), // want `nested member Post\{\}\.Author\.Name is not supported`
	buildgen.Optional(Draft{}.Title),      // want `Draft\{\}\.Title is not a member of Post`
	buildgen.Optional(Post{}.Clone),       // want `Clone is not a member of Post`
)

var Publish = buildgen.Func(publish, nil,
	buildgen.Optional("notify"), // ok
	buildgen.Optional("silent"), // want `publish has no parameter "silent"`
	buildgen.Optional(42),       // want `42 is not string literal`
)

type Base struct {
	ID int
}

type Entry struct {
	Base
	Name string
}

var NewEntry = buildgen.Struct[Entry](nil,
	buildgen.Optional(Entry{}.ID), // want `ID is not a direct member of Entry`
)
