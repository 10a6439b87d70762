//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Post struct {
	Title string
}

var _ = buildgen.Struct[Post](nil) // want `cannot assign builder to blank identifier`

var topic any = buildgen.Struct[Post](nil) // want `builder variable must take the directive's own type`

var NewPtr = buildgen.Struct[*Post](nil) // want `cannot build \*Post; use the struct type Post`

var NewInt = buildgen.Struct[int](nil) // want `cannot build int; only named struct types are supported`

var NewAnon = buildgen.Struct[struct{ N int }](nil) // want `cannot build struct\{N int\}; only named struct types are supported`
