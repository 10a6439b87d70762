package parse

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// fileOf returns the syntax file containing the position. The file may belong
// to a dependency package because build targets can be foreign types.
func (p *Parser) fileOf(pos token.Pos) *ast.File {
	if p.files == nil {
		packages.Visit([]*packages.Package{p.pkg}, nil, func(pkg *packages.Package) {
			p.files = append(p.files, pkg.Syntax...)
		})
	}

	for _, file := range p.files {
		if file.FileStart <= pos && pos <= file.FileEnd {
			return file
		}
	}
	return nil
}

// FieldDoc returns the doc comment and the line comment of a struct field.
func (p *Parser) FieldDoc(field *types.Var) (doc, comment *ast.CommentGroup) {
	file := p.fileOf(field.Pos())
	if file == nil {
		return nil, nil
	}

	path, _ := astutil.PathEnclosingInterval(file, field.Pos(), field.Pos())
	for _, node := range path {
		if f, ok := node.(*ast.Field); ok {
			return f.Doc, f.Comment
		}
	}
	return nil, nil
}

// ParamDoc returns the doc comment of a function parameter. The parser does
// not attach comments inside parameter lists to the AST, so the doc is
// recovered from the file's comment list: a comment group ending on the line
// right above the parameter documents it. Parameters declared together in one
// group share the same doc.
func (p *Parser) ParamDoc(pos token.Pos) *ast.CommentGroup {
	file := p.fileOf(pos)
	if file == nil {
		return nil
	}

	var params *ast.FieldList
	path, _ := astutil.PathEnclosingInterval(file, pos, pos)
	for _, node := range path {
		if ft, ok := node.(*ast.FuncType); ok {
			params = ft.Params
			break
		}
	}
	if params == nil {
		return nil
	}

	fset := p.Pkg().Fset
	line := fset.Position(pos).Line

	// Lines holding a parameter name cannot start a doc comment; a comment
	// there is a trailing comment of that parameter.
	paramLines := make(map[int]bool)
	for _, f := range params.List {
		for _, name := range f.Names {
			paramLines[fset.Position(name.Pos()).Line] = true
		}
	}

	for _, group := range file.Comments {
		if group.Pos() < params.Opening || group.End() > params.Closing {
			continue
		}
		if paramLines[fset.Position(group.Pos()).Line] {
			continue
		}
		if fset.Position(group.End()).Line+1 == line {
			return group
		}
	}
	return nil
}
