package buildgeninternal

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildgen/internal/buildgen/build"
	"github.com/sublee/buildgen/internal/buildgen/parse"
	"github.com/sublee/buildgen/internal/codefmt"
)

// Buildgen generates builder code for the target package. Call [Buildgen.Build]
// and then [Buildgen.Generate] to get the generated code. All potential errors
// are returned by [Buildgen.Build]. Once [Buildgen.Build] succeeds,
// [Buildgen.Generate] never fails.
type Buildgen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	mods     map[token.Pos]*parse.Module
	builders map[token.Pos]*build.Builder
}

// New creates a new [Buildgen] for the given package. The package must have
// its Syntax, Types, and TypesInfo. Load errors are filtered by
// [loadErrors]: type errors in plain files are expected while the generated
// file is excluded by the buildgen build tag, and only the remaining errors
// reject the package.
func New(pkg *packages.Package) (*Buildgen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := loadErrors(parser, pkg); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Buildgen{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing directives and synthesizing
// builders. All potential errors are returned by this method. It must be
// called before [Buildgen.Generate].
func (bg *Buildgen) Build() error {
	mods, errs := bg.p.ParseModules()
	bg.mods = mods

	dirs, err := bg.p.ParseDirectives(mods)
	errs = errors.Join(errs, err)

	errs = errors.Join(errs, bg.p.Validate(mods, dirs))
	if errs != nil {
		return errs
	}
	if len(dirs) == 0 {
		// No builder definitions found
		return nil
	}

	// The directive variables already occupy the start function names in the
	// package scope. Reserve them explicitly as well so that derived builder
	// names never shadow them.
	for _, d := range dirs {
		bg.ns.Reserve(d.StartName)
	}

	// Explicit builder names are claimed first and must be free. Derived
	// names step aside with a numbering suffix instead.
	names := make(map[*parse.Directive]string, len(dirs))
	for _, d := range dirs {
		name := d.Config.BuilderName
		if name == "" {
			continue
		}
		if !bg.ns.Reserve(name) {
			err := codefmt.Errorf(d, codefmt.Pos(d.Config.BuilderNameAt), "cannot name builder %s; already declared", name)
			errs = errors.Join(errs, err)
			continue
		}
		names[d] = name
	}
	for _, d := range dirs {
		if _, ok := names[d]; ok {
			continue
		}
		names[d] = bg.ns.Name(builderBaseName(d) + "Builder")
	}
	if errs != nil {
		return errs
	}

	// Synthesize a builder for every directive.
	bg.builders = make(map[token.Pos]*build.Builder)
	for _, d := range dirs {
		b, err := build.Build(bg.p, d, names[d])
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		bg.builders[d.Pos()] = b
	}

	return errs
}

// builderBaseName is the bare target name a derived builder name grows from.
// The Builder suffix and, on conflicts, a numbering suffix are appended by
// the caller.
func builderBaseName(d *parse.Directive) string {
	if d.Func {
		return d.Fn.Name()
	}
	return d.Target.Named.Obj().Name()
}

// Generate generates builder code for the package. It must be called after
// [Buildgen.Build] succeeds. It returns nil when the package declares no
// directives.
func (bg *Buildgen) Generate() []byte {
	if len(bg.builders) == 0 {
		return nil
	}
	bg.writeBuilderCode()
	bg.mergeCode()
	return bg.frameCode()
}

// writeBuilderCode writes the declaration set of every builder in source
// position order.
func (bg *Buildgen) writeBuilderCode() {
	bg.w.Printf("// buildgen: builders\n\n")

	builders := slices.Collect(maps.Values(bg.builders))
	slices.SortFunc(builders, func(a, b *build.Builder) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	for _, b := range builders {
		local := maps.Clone(bg.ns)
		w := bg.w.WithNS(local)
		b.WriteDefineCode(w)
		bg.w.Printf("\n")
	}
}

// mergeCode copies non-buildgen code from the source files tagged with
// "//go:build buildgen". It erases buildgen directives to remove any
// references to the buildgen package.
func (bg *Buildgen) mergeCode() {
	for _, file := range bg.p.BuildgenGoFiles() {
		name := filepath.Base(bg.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(bg.buf, "// %s:\n\n", name)
				first = false
			}

			// Erase buildgen.Module()
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				if call, ok := c.Node().(*ast.CallExpr); ok {
					if bg.p.IsDirective(call, "Module") {
						// HACK: printer.Fprint does not validate the name of an
						// Ident node. It can be used to inject arbitrary code
						// including comments at the desired position.
						c.Replace(&ast.Ident{Name: "struct{}{} // buildgen module erased"})
						return false
					}
				}
				return true
			}, nil).(ast.Decl)

			// Erase builder directives
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-buildgen values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						// Grouped consts may not have values
						names = append(names, spec.Names[i])
						continue
					}

					if _, ok := bg.builders[spec.Values[i].Pos()]; !ok {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				if len(names) == 0 {
					// Input:  var ( a = buildgen.Struct[T](...) )
					// Output: var ()
					c.Delete()
				} else {
					// Input:  var ( a, b = buildgen.Struct[T](...), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(bg.w, decl)

			// Write rewritten declaration code
			printer.Fprint(bg.buf, bg.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(bg.buf, "\n\n")
		}
	}
}

func (bg *Buildgen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !buildgen\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/buildgen%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", bg.p.Pkg().Name)

	if len(bg.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range bg.w.Imports() {
			// Check for remaining buildgen import
			if imp.Path() == "github.com/sublee/buildgen" {
				fmt.Println("buildgen import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, bg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
