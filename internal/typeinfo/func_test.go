package typeinfo_test

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/buildgen/internal/typeinfo"
)

func TestFuncOfBasic(t *testing.T) {
	_, _, pkg, err := parse(`
package p
func f(name string, age int) string { return name }
`)
	require.NoError(t, err)

	fn, err := typeinfo.FuncOf(pkg.Scope().Lookup("f"), nil)
	require.NoError(t, err)

	assert.Equal(t, "f", fn.Name())
	require.Len(t, fn.Params(), 2)
	assert.Equal(t, "name", fn.Params()[0].Name)
	assert.Equal(t, "age", fn.Params()[1].Name)
	assert.True(t, fn.Params()[0].Type.IsBasic())

	require.Len(t, fn.Results(), 1)
	assert.False(t, fn.HasErr())
	assert.False(t, fn.IsVariadic())
}

func TestFuncOfTrailingError(t *testing.T) {
	_, _, pkg, err := parse(`
package p
func f(name string) (string, error) { return name, nil }
`)
	require.NoError(t, err)

	fn, err := typeinfo.FuncOf(pkg.Scope().Lookup("f"), nil)
	require.NoError(t, err)

	assert.True(t, fn.HasErr())
	require.Len(t, fn.Results(), 1)
	assert.True(t, fn.Results()[0].IsBasic())
}

func TestFuncOfOnlyError(t *testing.T) {
	_, _, pkg, err := parse(`
package p
func f() error { return nil }
`)
	require.NoError(t, err)

	fn, err := typeinfo.FuncOf(pkg.Scope().Lookup("f"), nil)
	require.NoError(t, err)

	assert.True(t, fn.HasErr())
	assert.Empty(t, fn.Results())
}

func TestFuncOfVariadic(t *testing.T) {
	_, _, pkg, err := parse(`
package p
func f(name string, tags ...string) string { return name }
`)
	require.NoError(t, err)

	fn, err := typeinfo.FuncOf(pkg.Scope().Lookup("f"), nil)
	require.NoError(t, err)

	assert.True(t, fn.IsVariadic())
	require.Len(t, fn.Params(), 2)
	assert.False(t, fn.Params()[0].Variadic)
	assert.True(t, fn.Params()[1].Variadic)
	assert.True(t, fn.Params()[1].Type.IsSlice())
}

func TestFuncOfUnnamedParam(t *testing.T) {
	_, _, pkg, err := parse(`
package p
func f(string, int) string { return "" }
`)
	require.NoError(t, err)

	fn, err := typeinfo.FuncOf(pkg.Scope().Lookup("f"), nil)
	require.NoError(t, err)

	// Unnamed parameters survive inspection. Rejecting them is up to the
	// member extractor, which can point at the exact parameter.
	require.Len(t, fn.Params(), 2)
	assert.Equal(t, "", fn.Params()[0].Name)
	assert.Equal(t, "", fn.Params()[1].Name)
}

func TestFuncOfMethodReceiver(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type counter struct{ n int }
func (c counter) add(delta int) counter { c.n += delta; return c }
`)
	require.NoError(t, err)

	obj, _, _ := types.LookupFieldOrMethod(pkg.Scope().Lookup("counter").Type(), true, pkg, "add")
	require.NotNil(t, obj)

	fn, err := typeinfo.FuncOf(obj, nil)
	require.NoError(t, err)

	// The receiver expands into the first parameter, matching the call
	// syntax of a method expression.
	require.Len(t, fn.Params(), 2)
	assert.Equal(t, "c", fn.Params()[0].Name)
	assert.Equal(t, "delta", fn.Params()[1].Name)
}

func TestFuncOfNotFunc(t *testing.T) {
	_, _, pkg, err := parse(`
package p
var x int
`)
	require.NoError(t, err)

	_, err = typeinfo.FuncOf(pkg.Scope().Lookup("x"), nil)
	assert.Error(t, err)
}
