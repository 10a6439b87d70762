//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Meta struct {
	CreatedAt int64
}

type Page struct {
	Meta
	Title string
}

type Pad struct {
	_ [4]byte
	N int
}

func render(title string, _ int) string { return title }

func scale(int) int { return 0 }

var NewPage = buildgen.Struct[Page](nil) // want `cannot build Page; embedded field Meta must have a name to be set as one value`

var NewPad = buildgen.Struct[Pad](nil) // want `cannot build Pad; blank field at .* must have a name`

var Render = buildgen.Func(render, nil) // want `cannot build render; blank parameter 2 at .* must have a name`

var Scale = buildgen.Func(scale, nil) // want `cannot build scale; unnamed parameter 1 at .* must have a name`
