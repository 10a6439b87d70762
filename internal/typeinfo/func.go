package typeinfo

import (
	"fmt"
	"go/token"
	"go/types"
)

// Param describes a single parameter of a target function.
type Param struct {
	// Name is the declared parameter name. It is empty for unnamed
	// parameters and "_" for blank ones.
	Name string

	// Type is the parameter type. For the variadic parameter, it is the
	// slice type, such as []string for ...string.
	Type Type

	// Variadic indicates that this is the trailing ...T parameter.
	Variadic bool

	// Pos is the position where the parameter is declared.
	Pos token.Pos
}

// Func describes a target function from the Buildgen's perspective: its
// parameters in declaration order, its results, and whether the last result
// is the built-in error type.
type Func struct {
	obj     types.Object
	sig     *types.Signature
	params  []Param
	results []Type
	hasErr  bool
	pos     token.Pos
}

// FuncOf inspects a function object and returns a new [Func].
//
// sig is the effective call signature, which may differ from the signature
// of obj itself: for a method expression such as T.M, the caller passes the
// use-site signature where the receiver appears as the first parameter. If
// sig is nil, the signature of obj is used. A receiver on sig is expanded
// into a leading parameter, matching method expression call syntax.
func FuncOf(obj types.Object, sig *types.Signature) (Func, error) {
	if sig == nil {
		var ok bool
		sig, ok = obj.Type().Underlying().(*types.Signature)
		if !ok {
			return Func{}, fmt.Errorf("%s is not a function", obj.Name())
		}
	}

	fn := Func{obj: obj, sig: sig, pos: obj.Pos()}

	if recv := sig.Recv(); recv != nil {
		fn.params = append(fn.params, Param{
			Name: recv.Name(),
			Type: TypeOf(recv.Type()),
			Pos:  recv.Pos(),
		})
	}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		v := params.At(i)
		fn.params = append(fn.params, Param{
			Name:     v.Name(),
			Type:     TypeOf(v.Type()),
			Variadic: sig.Variadic() && i == params.Len()-1,
			Pos:      v.Pos(),
		})
	}

	results := sig.Results()
	n := results.Len()
	if n != 0 && TypeOf(results.At(n-1).Type()).IsError() {
		fn.hasErr = true
		n--
	}
	for i := 0; i < n; i++ {
		fn.results = append(fn.results, TypeOf(results.At(i).Type()))
	}

	return fn, nil
}

func (fn Func) Object() types.Object { return fn.obj }
func (fn Func) Name() string         { return fn.obj.Name() }

// Pkg returns the package where the function is declared.
func (fn Func) Pkg() *types.Package { return fn.obj.Pkg() }

// Signature returns the effective call signature.
func (fn Func) Signature() *types.Signature { return fn.sig }

// Params returns the parameters in declaration order. A receiver expanded
// from a method expression comes first.
func (fn Func) Params() []Param { return fn.params }

// Results returns the result types, excluding the trailing error result
// reported by [Func.HasErr].
func (fn Func) Results() []Type { return fn.results }

// HasErr reports whether the last result is the built-in error type.
func (fn Func) HasErr() bool { return fn.hasErr }

// IsVariadic reports whether the last parameter is a ...T parameter.
func (fn Func) IsVariadic() bool { return fn.sig.Variadic() }

func (fn Func) Pos() token.Pos {
	if fn.pos == token.NoPos {
		return fn.obj.Pos()
	}
	return fn.pos
}

// WithPos returns a copy of the [Func] with the given position. Diagnostics
// about a directive point at its call site rather than at the declaration of
// the target function.
func (fn Func) WithPos(pos token.Pos) Func {
	fn.pos = pos
	return fn
}
