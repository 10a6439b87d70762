package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"

	"github.com/sublee/buildgen/internal/codefmt"
	"github.com/sublee/buildgen/internal/typeinfo"
)

// Module is a shared context for builders. It holds configuration options, and
// every builder belonging to a module inherits them.
type Module struct {
	// Name is the module name user gave when declaring the module as a
	// variable. It can be empty if the module is declared inline.
	Name string

	// Config holds all configuration options defined in this module.
	Config Config
}

// ParseModules finds and parses all buildgen.Module calls in the parsed files.
func (p *Parser) ParseModules() (map[token.Pos]*Module, error) {
	var errs error
	mods := make(map[token.Pos]*Module)

	for _, file := range p.BuildgenGoFiles() {
		for id, call := range p.FindModules(file) {
			name := id.Name
			if name == "_" {
				name = ""
			}

			mod, err := p.ParseModule(call, name)
			mods[id.Pos()] = mod
			errs = errors.Join(errs, err)
		}
	}

	return mods, errs
}

// FindModules collects and iterates package-level [buildgen.Module] calls. It
// does not collect inline calls.
func (p *Parser) FindModules(file *ast.File) iter.Seq2[*ast.Ident, *ast.CallExpr] {
	return func(yield func(*ast.Ident, *ast.CallExpr) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for i, id := range val.Names {
					if len(val.Values) <= i {
						break
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Module") {
						continue
					}

					if !yield(id, call) {
						return
					}
				}
			}
		}
	}
}

// ParseModule parses a [buildgen.Module] call expression and returns a new
// module. Member options do not satisfy the module option interface, so the
// config is parsed without a path parser.
func (p *Parser) ParseModule(call *ast.CallExpr, name string) (*Module, error) {
	cfg := NewConfig()
	err := p.ParseConfig(&cfg, call.Args, nil)
	return &Module{Name: name, Config: cfg}, err
}

// ParseModuleArg parses a Buildgen module argument from the given expression.
func (p *Parser) ParseModuleArg(expr ast.Expr, mods map[token.Pos]*Module) (*Module, error) {
	expr = ast.Unparen(expr)

	// Inline Module Declaration
	// =========================
	//
	//	var post = buildgen.Struct[Post](buildgen.Module(...))
	//	                                 ^^^^^^^^^^^^^^^^^^^^
	// This type of module is anonymous and cannot be shared with other
	// builders. It is still useful to group options visually.
	if call, ok := expr.(*ast.CallExpr); ok && p.IsDirective(call, "Module") {
		return p.ParseModule(call, "")
	}

	// Validate identifier
	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil, codefmt.Errorf(p, expr, "module must be buildgen.Module() or package-level variable")
	}

	t := typeinfo.TypeOf(p.Pkg().TypesInfo.TypeOf(id))

	// Nil Module
	// ==========
	//
	//	var post = buildgen.Struct[Post](nil)
	//	                                 ^^^
	// Nil indicates a new empty module with no configuration.
	if t.IsNil() {
		// The module is nil which is legal. It means a single builder has its
		// own module.
		return NilModule(), nil
	}

	// Package-level Module
	// ====================
	//
	//	var (
	//		mod = buildgen.Module(...)
	//		^^^
	//		post = buildgen.Struct[Post](mod)
	//		user = buildgen.Struct[User](mod)
	//	)
	//
	// This is the most common way to declare and use a module. Multiple
	// builders can belong to the same package-level module.
	modPos := p.Pkg().TypesInfo.ObjectOf(id).Pos()
	mod, ok := mods[modPos]
	if !ok {
		return nil, codefmt.Errorf(p, expr, "cannot find %q module declared by buildgen.Module", id.Name)
	}
	return mod, nil
}

// NilModule returns a new empty module with no configuration.
func NilModule() *Module {
	return &Module{Config: NewConfig()}
}
