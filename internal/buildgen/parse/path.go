package parse

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sublee/buildgen/internal/codefmt"
	"github.com/sublee/buildgen/internal/typeinfo"
)

// Path identifies a member of a builder target. For struct targets, it names
// a field. For function targets, it names a parameter.
type Path struct {
	Name string
	Type typeinfo.Type
	Pos  token.Pos
}

// pathParser resolves the member argument of a member option, such as
// Post{}.Title or "title", against a specific builder target.
type pathParser interface {
	ParsePath(p *Parser, expr ast.Expr) (Path, error)
}

// structPaths resolves field selectors against a struct target. The base of a
// selector must be a value of the target type, such as Post{}.Title,
// (&Post{}).Title, or (*Post)(nil).Title.
type structPaths struct {
	target typeinfo.Type
}

func (ps structPaths) ParsePath(p *Parser, expr ast.Expr) (Path, error) {
	sel, ok := ast.Unparen(expr).(*ast.SelectorExpr)
	if !ok {
		return Path{}, codefmt.Errorf(p, expr, "%c is not a member of %t", expr, ps.target)
	}

	// A selector base which selects a field itself walks through a nested
	// member, like Post{}.Author.Name. Members are flat, so there is nothing
	// the option could address beyond the first depth.
	if inner, ok := ast.Unparen(sel.X).(*ast.SelectorExpr); ok {
		if v, ok := p.Pkg().TypesInfo.ObjectOf(inner.Sel).(*types.Var); ok && v.IsField() {
			return Path{}, codefmt.Errorf(p, expr, "nested member %c is not supported", expr)
		}
	}

	baseType := p.Pkg().TypesInfo.TypeOf(sel.X)
	if baseType == nil {
		return Path{}, codefmt.Errorf(p, expr, "%c is not a member of %t", expr, ps.target)
	}
	if base := typeinfo.TypeOf(baseType).Deref(); !base.Identical(ps.target) {
		return Path{}, codefmt.Errorf(p, expr, "%c is not a member of %t", expr, ps.target)
	}

	field, ok := p.Pkg().TypesInfo.ObjectOf(sel.Sel).(*types.Var)
	if !ok || !field.IsField() {
		return Path{}, codefmt.Errorf(p, expr, "%s is not a member of %t", sel.Sel.Name, ps.target)
	}

	// Selection at depth 0 shadows promoted fields, so when the target
	// declares a field under this name, the selector refers to exactly that
	// field. Resolve against the target's own field to stay stable across
	// generic instantiation.
	direct, ok := ps.target.StructField(field.Name())
	if !ok {
		return Path{}, codefmt.Errorf(p, expr, "%s is not a direct member of %t", field.Name(), ps.target)
	}

	return Path{Name: direct.Name(), Type: typeinfo.TypeOf(direct.Type()), Pos: sel.Sel.Pos()}, nil
}

// funcPaths resolves parameter names against a function target.
type funcPaths struct {
	target typeinfo.Func
}

func (ps funcPaths) ParsePath(p *Parser, expr ast.Expr) (Path, error) {
	name, err := parseArgExpr[string](p, expr)
	if err != nil {
		return Path{}, err
	}

	for _, param := range ps.target.Params() {
		if param.Name == name {
			return Path{Name: name, Type: param.Type, Pos: expr.Pos()}, nil
		}
	}

	return Path{}, codefmt.Errorf(p, expr, "%o has no parameter %q", ps.target.Object(), name)
}
