package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

func IsBuildgenImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/sublee/buildgen"
}

// Parser parses an AST of the underlying package to collect buildgen builder
// declarations.
type Parser struct {
	pkg *packages.Package

	// files caches the syntax of the package and its dependencies for
	// position lookups. See [Parser.fileOf].
	files []*ast.File
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

func (p *Parser) IsNil(expr ast.Expr) bool {
	expr = ast.Unparen(expr)

	// nil
	if id, ok := expr.(*ast.Ident); ok {
		if id.Name == "nil" {
			return true
		}
	}

	// T(nil)
	if call, ok := expr.(*ast.CallExpr); ok {
		fun := ast.Unparen(call.Fun)
		if !call.Ellipsis.IsValid() && len(call.Args) == 1 {
			switch fun.(type) {
			case *ast.ArrayType, *ast.StructType, *ast.FuncType, *ast.InterfaceType, *ast.MapType, *ast.ChanType:
				return p.IsNil(call.Args[0])
			}
		}
	}

	return false
}

// GetDirective returns the name of the Buildgen directive function if the call
// expression is a Buildgen directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsBuildgenImport(pkg.Path()) {
		// Not Buildgen function
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a Buildgen directive with the
// given name. If name is empty, it checks if the call is any Buildgen
// directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		// Any buildgen directive
		return true
	}

	return calleeName == name
}

// BuildgenGoFiles returns the Go files that have a "//go:build buildgen"
// constraint.
func (p *Parser) BuildgenGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildBuildgen(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildBuildgen checks if the file has a "//go:build buildgen" constraint.
func hasGoBuildBuildgen(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == "buildgen" {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// tailIdent extracts the rightmost [ast.Ident] from the expression.
//
//	foo
//	^^^
//	foo.Bar
//	    ^^^
//	foo.Bar[int]
//	    ^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr, true
	case *ast.SelectorExpr:
		// foo.bar.baz
		//         ^^^
		return tailIdent(expr.Sel)
	case *ast.IndexExpr:
		// Instantiated generic function like wrap[int]
		return tailIdent(expr.X)
	case *ast.IndexListExpr:
		return tailIdent(expr.X)
	}
	return nil, false
}
