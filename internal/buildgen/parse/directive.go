package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildgen/internal/codefmt"
	"github.com/sublee/buildgen/internal/typeinfo"
)

// Directive represents one builder declared by buildgen.Struct or
// buildgen.Func.
type Directive struct {
	Module *Module
	Config Config

	// Struct is true for buildgen.Struct directives. Target is the struct
	// type the builder fills.
	Struct bool
	Target typeinfo.Type

	// Func is true for buildgen.Func directives. Fn is the function the
	// builder calls, and FnExpr is the expression that referenced it.
	Func   bool
	Fn     typeinfo.Func
	FnExpr ast.Expr

	// StartName is the variable name the directive is assigned to. The
	// generated start function takes this name. StartPos is the position of
	// the variable name.
	StartName string
	StartPos  token.Pos

	pkg *packages.Package
	pos token.Pos

	// Doc and Comment are carried over to the generated start function.
	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup
}

// Pkg returns the package where the directive is declared. Directive
// implements [codefmt.Pkger] by this method.
func (d *Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the token position where the directive is declared. Directive
// implements [codefmt.Poser] by this method.
func (d *Directive) Pos() token.Pos { return d.pos }

// String returns a string representation of the directive. For example,
// "buildgen.Struct[blog.Post]".
func (d *Directive) String() string {
	if d.Func {
		return codefmt.Sprintf(d, "buildgen.Func(%o)", d.Fn.Object())
	}
	return codefmt.Sprintf(d, "buildgen.Struct[%t]", d.Target)
}

// ParseDirectives parses all [Directive]s from the AST.
func (p *Parser) ParseDirectives(mods map[token.Pos]*Module) ([]*Directive, error) {
	var errs error
	var dirs []*Directive

	for _, file := range p.BuildgenGoFiles() {
		for d, err := range p.parseDirectivesInFile(file, mods) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			dirs = append(dirs, d)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return dirs, nil
}

// parseDirectivesInFile parses and yields [Directive]s in the given file.
func (p *Parser) parseDirectivesInFile(file *ast.File, mods map[token.Pos]*Module) iter.Seq2[*Directive, error] {
	return func(yield func(*Directive, error) bool) {
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

				if len(val.Names) != len(val.Values) {
					// Directives return exactly one value. The assignment
					// like this is invalid:
					// a, b := buildgen.Struct[Post](nil)
					continue
				}

				doc := val.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					// For a declaration without parentheses, the doc comment
					// belongs to the GenDecl.
					doc = gen.Doc
				}

				for i := range val.Values {
					call, ok := val.Values[i].(*ast.CallExpr)
					if !ok {
						continue
					}

					if !p.isBuilder(call) {
						continue
					}

					id := val.Names[i]
					d, err := p.parseDirective(id, call, doc, val.Comment, mods)
					if err != nil {
						if !yield(nil, err) {
							return
						}
						continue
					}

					if !yield(d, nil) {
						return
					}
				}
			}
		}
	}
}

// isBuilder checks if the call expression declares a builder by
// buildgen.Struct or buildgen.Func.
func (p *Parser) isBuilder(call *ast.CallExpr) bool {
	if call == nil {
		return false
	}

	name, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	switch name {
	case "Struct", "Func":
		return true
	}
	return false
}

// parseDirective parses a [Directive] from the given AST nodes.
func (p *Parser) parseDirective(id *ast.Ident, call *ast.CallExpr, doc, comment *ast.CommentGroup, mods map[token.Pos]*Module) (*Directive, error) {
	var errs error
	d := &Directive{
		pkg:     p.Pkg(),
		pos:     call.Pos(),
		Doc:     doc,
		Comment: comment,
	}

	if id != nil && id.Name == "_" {
		return nil, codefmt.Errorf(p, id, "cannot assign builder to blank identifier")
	}
	d.StartName = id.Name
	d.StartPos = id.Pos()

	var modExpr ast.Expr
	var opts []ast.Expr
	var paths pathParser

	name, _ := p.GetDirective(call)
	switch name {
	case "Struct":
		d.Struct = true

		target, err := p.parseStructTarget(id)
		if err != nil {
			return nil, errors.Join(errs, err)
		}
		d.Target = target

		paths = structPaths{target}
		modExpr = call.Args[0]
		opts = call.Args[1:]

	case "Func":
		d.Func = true

		fn, err := p.parseFuncTarget(call.Args[0])
		if err != nil {
			return nil, errors.Join(errs, err)
		}
		d.Fn = fn
		d.FnExpr = call.Args[0]

		paths = funcPaths{fn}
		modExpr = call.Args[1]
		opts = call.Args[2:]

	default:
		panic(codefmt.Errorf(p, call, "unexpected buildgen function: %c", call.Fun))
	}

	mod, err := p.ParseModuleArg(modExpr, mods)
	if err != nil {
		mod = NilModule() // Prevent nil panic to collect as many errors as possible
	}
	d.Module = mod
	errs = errors.Join(errs, err)

	// Parse config
	cfg := mod.Config.Fork()
	errs = errors.Join(errs, p.ParseConfig(&cfg, opts, paths))
	d.Config = cfg

	// Variadic parameters accept zero arguments, so they cannot be required.
	if d.Func {
		for _, param := range d.Fn.Params() {
			if !param.Variadic {
				continue
			}
			if req, ok := cfg.GetRequirement(param.Name); ok && !req.Optional {
				err := codefmt.Errorf(p, codefmt.Pos(req.Pos), "cannot require variadic parameter %s", param.Name)
				errs = errors.Join(errs, err)
			}
		}
	}

	if errs != nil {
		return nil, errs
	}
	return d, nil
}

// parseStructTarget resolves the target type of a buildgen.Struct directive.
// The directive variable's own type carries the target: buildgen.Struct[T]
// returns func() T, so T is the sole result of the variable's type.
func (p *Parser) parseStructTarget(id *ast.Ident) (typeinfo.Type, error) {
	obj := p.Pkg().TypesInfo.ObjectOf(id)

	sig, ok := obj.Type().Underlying().(*types.Signature)
	if !ok || sig.Results().Len() != 1 {
		// The variable has an explicit type that hides the directive's one,
		// such as "var x any = buildgen.Struct[Post](nil)".
		return typeinfo.Type{}, codefmt.Errorf(p, id, "builder variable must take the directive's own type")
	}

	target := typeinfo.TypeOf(sig.Results().At(0).Type())
	if target.IsPointer() {
		return typeinfo.Type{}, codefmt.Errorf(p, id, "cannot build %t; use the struct type %t", target, target.Deref())
	}
	if !target.IsNamed() || !target.IsStruct() {
		return typeinfo.Type{}, codefmt.Errorf(p, id, "cannot build %t; only named struct types are supported", target)
	}
	return target, nil
}

// parseFuncTarget resolves the target function of a buildgen.Func directive.
// Only package-level functions are supported. Method values and function
// literals cannot be named from the generated code once the directive is
// erased, so they are rejected.
func (p *Parser) parseFuncTarget(expr ast.Expr) (typeinfo.Func, error) {
	expr = ast.Unparen(expr)

	if p.IsNil(expr) {
		return typeinfo.Func{}, codefmt.Errorf(p, expr, "cannot use nil as build target")
	}
	if _, ok := expr.(*ast.FuncLit); ok {
		return typeinfo.Func{}, codefmt.Errorf(p, expr, "cannot build a function literal; declare a named function")
	}

	id, ok := tailIdent(expr)
	if !ok {
		return typeinfo.Func{}, codefmt.Errorf(p, expr, "%c is not a package-level function", expr)
	}

	fnObj, ok := p.Pkg().TypesInfo.ObjectOf(id).(*types.Func)
	if !ok {
		// A function-typed variable or a type conversion.
		return typeinfo.Func{}, codefmt.Errorf(p, expr, "%c is not a package-level function", expr)
	}

	sig := fnObj.Type().(*types.Signature)
	if sig.Recv() != nil {
		return typeinfo.Func{}, codefmt.Errorf(p, expr, "%o is a method; declare a package-level function", fnObj)
	}

	// The expression's own type reflects generic instantiation, so prefer it
	// over the declared signature.
	if t, ok := p.Pkg().TypesInfo.TypeOf(expr).(*types.Signature); ok {
		sig = t
	}

	return typeinfo.FuncOf(fnObj, sig)
}
