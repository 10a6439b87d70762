//go:build buildgen

package testdata

import "github.com/sublee/buildgen"

type List struct {
	items []string
}

func (l List) With(item string) List {
	l.items = append(l.items, item)
	return l
}

func newList(items ...string) List { return List{items: items} }

var fnVar func(...string) List

var FromNil = buildgen.Func[func()](nil, nil) // want `cannot use nil as build target`

var FromLit = buildgen.Func(func(item string) List { return List{} }, nil) // want `cannot build a function literal; declare a named function`

var FromMethod = buildgen.Func(List{}.With, nil) // want `List\.With is a method; declare a package-level function`

var FromVar = buildgen.Func(fnVar, nil) // want `fnVar is not a package-level function`

var NewList = buildgen.Func(newList, nil,
	buildgen.Required("items"), // want `cannot require variadic parameter items`
)
