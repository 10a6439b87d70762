//go:build buildgen

package testdata

import (
	"fmt"

	"github.com/sublee/buildgen"
)

type Post struct {
	Title string
}

var Mod = buildgen.Module() // want `cannot export module "Mod"; removed at code generation`

var mod = buildgen.Module()

var _ = mod // ok; blank assignments are erased together with the module

var NewPost = buildgen.Struct[Post](mod)

func debug() {
	fmt.Println(mod) // want `cannot use module "mod" outside buildgen directives; removed at code generation`
}
