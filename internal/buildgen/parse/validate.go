package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sublee/buildgen/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Many validation rules are implemented in the expected paths by narrow
// parsing functions. But some rules need to be checked globally. That's what
// this function does.
func (p *Parser) Validate(mods map[token.Pos]*Module, dirs []*Directive) error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateAssignedDirectives(file))
	}
	errs = errors.Join(errs, p.validateModuleUsages(mods))
	errs = errors.Join(errs, p.validateDirectiveUsages(dirs))
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/buildgen"
// have a "//go:build buildgen" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	// Find buildgen import
	var buildgenImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsBuildgenImport(strings.Trim(imp.Path.Value, `"`)) {
			buildgenImport = imp
			break
		}
	}
	if buildgenImport == nil {
		return nil // No buildgen import found
	}

	// Check for "//go:build buildgen" constraint
	if hasGoBuildBuildgen(file) {
		return nil // Constraint satisfied
	}

	// This file imports buildgen but has no "//go:build buildgen" constraint
	return codefmt.Errorf(p, buildgenImport, `file must have "//go:build buildgen" constraint when importing buildgen`)
}

// validateAssignedDirectives checks illegal assignments of Buildgen
// directives.
//
// Only modules and builders are allowed to be assigned to variables. Other
// directives, for example options, cannot be assigned. This is to prevent
// remaining Buildgen import after code generation.
func (p *Parser) validateAssignedDirectives(file *ast.File) error {
	if !hasGoBuildBuildgen(file) {
		return nil
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.ValueSpec, *ast.AssignStmt:
			ast.Inspect(node, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}

				directive, ok := p.GetDirective(call)
				if !ok {
					return true
				}

				// Modules and builders can be assigned to variables.
				switch directive {
				case "Module", "Struct", "Func":
					return false
				}

				// Other directives are not.
				err := codefmt.Errorf(p, call, "cannot assign %s to variable", directive)
				errs = errors.Join(errs, err)
				return false
			})
			return false
		}
		return true
	})
	return errs
}

// validateModuleUsages checks illegal references to modules.
//
// Modules are only allowed to be assigned to variables (except exported ones)
// or used as arguments to Buildgen directives. Any other usages are illegal,
// because modules will be removed at code generation, and any remaining
// references to modules will cause compilation errors.
func (p *Parser) validateModuleUsages(mods map[token.Pos]*Module) error {
	var errs error
	blanks := p.findBlankValues()
	for _, file := range p.Pkg().Syntax {
		astutil.Apply(file, func(c *astutil.Cursor) bool {
			if call, ok := c.Node().(*ast.CallExpr); ok {
				if p.IsDirective(call, "") {
					// A module can be used by Buildgen directives. That's fine.
					return false
				}
				return true
			}

			// We will check all use of identifiers.
			id, ok := c.Node().(*ast.Ident)
			if !ok {
				return true
			}

			if _, ok := blanks[id.Pos()]; ok {
				// Assigned to blank identifier. That's fine.
				return false
			}

			obj := p.pkg.TypesInfo.ObjectOf(id)
			if obj == nil {
				// Cannot resolve identifier. Skip it.
				return false
			}

			mod, ok := mods[obj.Pos()]
			if !ok {
				// Not a module identifier. Skip it.
				return false
			}

			if id.IsExported() {
				err := codefmt.Errorf(p, id, "cannot export module %q; removed at code generation", mod.Name)
				errs = errors.Join(errs, err)
				return false
			}

			if id.Pos() == obj.Pos() {
				// This is the module identifier declaration. That's fine.
				return false
			}

			err := codefmt.Errorf(p, id, "cannot use module %q outside buildgen directives; removed at code generation", mod.Name)
			errs = errors.Join(errs, err)
			return false
		}, nil)
	}
	return errs
}

// validateDirectiveUsages checks illegal references to builder directives.
//
// A directive variable like "var NewPost = buildgen.Struct[Post](nil)" is
// replaced by the generated start function, and the function's type differs
// from the variable's. A reference from a buildgen file would be carried into
// the generated file where the variable no longer exists, so only the
// declaration itself is allowed there. References from regular files are fine;
// they resolve to the generated function.
func (p *Parser) validateDirectiveUsages(dirs []*Directive) error {
	decls := make(map[token.Pos]*Directive, len(dirs))
	for _, d := range dirs {
		decls[d.StartPos] = d
	}

	var errs error
	for _, file := range p.BuildgenGoFiles() {
		astutil.Apply(file, func(c *astutil.Cursor) bool {
			id, ok := c.Node().(*ast.Ident)
			if !ok {
				return true
			}

			obj := p.pkg.TypesInfo.ObjectOf(id)
			if obj == nil {
				// Cannot resolve identifier. Skip it.
				return false
			}

			d, ok := decls[obj.Pos()]
			if !ok {
				// Not a builder identifier. Skip it.
				return false
			}

			if id.Pos() == obj.Pos() {
				// This is the builder identifier declaration. That's fine.
				return false
			}

			err := codefmt.Errorf(p, id, "cannot use builder %q in buildgen files; replaced at code generation", d.StartName)
			errs = errors.Join(errs, err)
			return false
		}, nil)
	}
	return errs
}

// findBlankValues finds all expressions assigned to blank identifier (_) by
// its position.
func (p *Parser) findBlankValues() map[token.Pos]struct{} {
	blanks := make(map[token.Pos]struct{})
	for _, file := range p.Pkg().Syntax {
		astutil.Apply(file, func(c *astutil.Cursor) bool {
			switch node := c.Node().(type) {
			case *ast.ValueSpec:
				if len(node.Names) == len(node.Values) {
					// var a = b
					// var c, d = e, f
					for i, name := range node.Names {
						if name.Name == "_" {
							blanks[node.Values[i].Pos()] = struct{}{}
						}
					}
				} else if len(node.Names) > 1 && len(node.Values) == 1 {
					// var a, b = f()
					for _, name := range node.Names {
						if name.Name == "_" {
							blanks[node.Values[0].Pos()] = struct{}{}
						}
					}
				}
			case *ast.AssignStmt:
				if len(node.Lhs) == len(node.Rhs) {
					// a := b
					// c, d := e, f
					for i, lh := range node.Lhs {
						if id, ok := lh.(*ast.Ident); ok && id.Name == "_" {
							blanks[node.Rhs[i].Pos()] = struct{}{}
						}
					}
				} else if len(node.Lhs) > 1 && len(node.Rhs) == 1 {
					// a, b := f()
					for _, lh := range node.Lhs {
						if id, ok := lh.(*ast.Ident); ok && id.Name == "_" {
							blanks[node.Rhs[0].Pos()] = struct{}{}
						}
					}
				}
			}
			return true
		}, nil)
	}
	return blanks
}
