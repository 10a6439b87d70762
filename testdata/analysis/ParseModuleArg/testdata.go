//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type Post struct {
	Title string
}

type User struct {
	Name string
}

var mod = buildgen.Module()

var mod2 = mod // want `cannot use module "mod" outside buildgen directives; removed at code generation`

var (
	NewPost  = buildgen.Struct[Post](mod)
	NewUser  = buildgen.Struct[User](mod2)    // want `cannot find "mod2" module declared by buildgen.Module`
	NewPost2 = buildgen.Struct[Post](*(&mod)) // want `module must be buildgen\.Module\(\) or package-level variable`
)
