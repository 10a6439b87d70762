// Package build synthesizes builders for parsed directives. A builder is a
// start function, a builder struct holding one slot per member, chainable
// setters, and a finisher that produces the target value. This package decides
// the shape of the generated code; the actual merge into the output file is
// done by the buildgen package.
package build

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/sublee/buildgen/internal/buildgen/parse"
	"github.com/sublee/buildgen/internal/codefmt"
	"github.com/sublee/buildgen/internal/typeinfo"
)

// Member is one addressable slot of a builder. It is a struct field for
// [buildgen.Struct] directives, or a function parameter for [buildgen.Func]
// directives.
type Member struct {
	// Name is the field or parameter name as declared on the target.
	Name string

	// Type is the member type. For the variadic parameter, it is the slice
	// type.
	Type typeinfo.Type

	// Optional members may be left unset when the builder finishes. Required
	// members get a set flag in the builder struct and are reported by the
	// finisher when missing.
	Optional bool

	// Default is the expression pre-filled by the start function, or nil.
	Default ast.Expr

	// Variadic indicates the trailing ...T parameter of a function target.
	Variadic bool

	// Doc is the documentation attached to the member declaration, or nil.
	// The synthesized setter carries it over.
	Doc *ast.CommentGroup

	pos token.Pos
}

// Pos returns the position where the member is declared.
func (m Member) Pos() token.Pos { return m.pos }

// ExtractMembers collects the members of the directive's target in
// declaration order. It fails when the target has a member that a builder
// cannot address by name, such as an embedded field or an unnamed parameter.
func ExtractMembers(p *parse.Parser, d *parse.Directive) ([]Member, error) {
	var members []Member
	var err error
	if d.Func {
		members, err = extractParams(p, d)
	} else {
		members, err = extractFields(p, d)
	}
	if err != nil {
		return nil, err
	}

	resolveOptionality(d.Config, members)
	return members, nil
}

// extractFields walks the fields of a struct target.
//
// Unexported fields of a foreign struct are skipped silently since the
// generated package cannot address them. A keyed composite literal leaves
// them zero-valued.
func extractFields(p *parse.Parser, d *parse.Directive) ([]Member, error) {
	var errs error
	var members []Member

	foreign := d.Target.Pkg() != nil && d.Target.Pkg() != p.Pkg().Types

	for field := range d.Target.Struct.Fields() {
		switch {
		case field.Anonymous():
			err := codefmt.Errorf(d, d, "cannot build %t; embedded field %s must have a name to be set as one value", d.Target, field.Name())
			errs = errors.Join(errs, err)
			continue

		case field.Name() == "_":
			err := codefmt.Errorf(d, d, "cannot build %t; blank field at %b must have a name", d.Target, field.Pos())
			errs = errors.Join(errs, err)
			continue

		case foreign && !field.Exported():
			continue
		}

		doc, comment := p.FieldDoc(field)
		if doc == nil {
			doc = comment
		}

		members = append(members, Member{
			Name: field.Name(),
			Type: typeinfo.TypeOf(field.Type()),
			Doc:  doc,
			pos:  field.Pos(),
		})
	}

	if errs != nil {
		return nil, errs
	}
	return members, nil
}

// extractParams walks the parameters of a function target. Grouped
// parameters such as (x, y int) arrive already flattened, one per name.
func extractParams(p *parse.Parser, d *parse.Directive) ([]Member, error) {
	var errs error
	var members []Member

	for i, param := range d.Fn.Params() {
		if param.Name == "" || param.Name == "_" {
			label := "unnamed"
			if param.Name == "_" {
				label = "blank"
			}
			err := codefmt.Errorf(d, d, "cannot build %o; %s parameter %d at %b must have a name", d.Fn, label, i+1, param.Pos)
			errs = errors.Join(errs, err)
			continue
		}

		members = append(members, Member{
			Name:     param.Name,
			Type:     param.Type,
			Variadic: param.Variadic,
			Doc:      p.ParamDoc(param.Pos),
			pos:      param.Pos,
		})
	}

	if errs != nil {
		return nil, errs
	}
	return members, nil
}

// resolveOptionality decides which members may be left unset. Pointer
// members and the variadic parameter are optional by themselves, a default
// makes any member optional, and an explicit requirement overrides all of
// the above.
func resolveOptionality(cfg parse.Config, members []Member) {
	for i := range members {
		m := &members[i]

		if m.Type.IsPointer() || m.Variadic {
			m.Optional = true
		}
		if def, ok := cfg.GetDefault(m.Name); ok {
			m.Default = def.Expr
			m.Optional = true
		}
		if req, ok := cfg.GetRequirement(m.Name); ok {
			m.Optional = req.Optional
		}
	}
}
