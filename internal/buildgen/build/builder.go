package build

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/emirpasic/gods/maps/hashbidimap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildgen/internal/buildgen/parse"
	"github.com/sublee/buildgen/internal/codefmt"
	"github.com/sublee/buildgen/internal/lcs"
	"github.com/sublee/buildgen/internal/typeinfo"
)

// Builder is a synthesized builder ready to be printed: a start function
// named by the directive variable, a builder struct with one slot per
// member, chainable setters, and a finisher.
type Builder struct {
	d       *parse.Directive
	members []Member

	name   string // builder struct name
	finish string // finisher method name

	// setters maps member names to setter names. The inverse view tells
	// which member claimed a setter name when derivation collides.
	setters *hashbidimap.Map

	slots map[string]string // member name -> slot field name
	flags map[string]string // member name -> set flag field name, required only
	built string            // consume guard field name
}

// Build synthesizes a builder for the directive. This is the main entry
// point of this package.
//
// name is the builder struct name, already reserved in the package
// namespace by the caller.
func Build(p *parse.Parser, d *parse.Directive, name string) (*Builder, error) {
	members, err := ExtractMembers(p, d)
	if err != nil {
		return nil, err
	}
	if err := CheckDocs(p, d, members); err != nil {
		return nil, err
	}

	b := &Builder{d: d, members: members, name: name}

	b.finish = d.Config.FinishName
	if b.finish == "" {
		b.finish = "Build"
		if d.Func {
			b.finish = "Call"
		}
	}

	if err := b.deriveSetters(); err != nil {
		return nil, err
	}
	b.allocFields()
	return b, nil
}

func (b *Builder) Pkg() *packages.Package { return b.d.Pkg() }

// Pos returns the position of the directive this builder was made from.
func (b *Builder) Pos() token.Pos { return b.d.Pos() }

// Name returns the builder struct name.
func (b *Builder) Name() string { return b.name }

// Finish returns the finisher method name.
func (b *Builder) Finish() string { return b.finish }

// Members returns the members in declaration order.
func (b *Builder) Members() []Member { return b.members }

// Setter returns the setter name derived for the member.
func (b *Builder) Setter(member string) (string, bool) {
	setter, ok := b.setters.Get(member)
	if !ok {
		return "", false
	}
	return setter.(string), true
}

// deriveSetters gives every member a setter name. An explicit rename wins;
// otherwise the member name runs through common-word trimming when enabled,
// then the exported-name normalization, then the setter prefix. Setters are
// the public surface of the builder, so a name claimed twice is a
// diagnostic rather than silent disambiguation.
func (b *Builder) deriveSetters() error {
	cfg := b.d.Config

	var prefix, suffix string
	if len(b.members) > 1 {
		names := make([]string, len(b.members))
		for i, m := range b.members {
			names[i] = m.Name
		}
		if cfg.TrimCommonWordPrefix {
			prefix = lcs.CommonWordPrefix(names)
		}
		if cfg.TrimCommonWordSuffix {
			suffix = lcs.CommonWordSuffix(names)
		}
	}

	var errs error
	b.setters = hashbidimap.New()

	for _, m := range b.members {
		var setter string
		if rename, ok := cfg.GetRename(m.Name); ok {
			setter = rename.Setter
		} else {
			name := m.Name
			if trimmed := strings.TrimPrefix(name, prefix); trimmed != name && keepsIdent(trimmed) {
				name = trimmed
			}
			if trimmed := strings.TrimSuffix(name, suffix); trimmed != name && keepsIdent(trimmed) {
				name = trimmed
			}
			setter = cfg.SetterPrefix + codefmt.ExportName(name)
		}

		if setter == b.finish {
			err := codefmt.Errorf(b.d, b.d, "setter %s for member %s collides with the finisher; rename either one", setter, m.Name)
			errs = errors.Join(errs, err)
			continue
		}
		if prev, ok := b.setters.GetKey(setter); ok {
			err := codefmt.Errorf(b.d, b.d, "setter %s for member %s is already taken by member %s; rename it with buildgen.Rename", setter, m.Name, prev)
			errs = errors.Join(errs, err)
			continue
		}
		b.setters.Put(m.Name, setter)
	}
	return errs
}

// keepsIdent reports whether a trimmed member name still yields a usable
// identifier. Trimming that leaves nothing, or leaves a leading digit,
// falls back to the untrimmed name.
func keepsIdent(s string) bool {
	s = strings.TrimLeft(s, "_")
	return s != "" && !(s[0] >= '0' && s[0] <= '9')
}

// allocFields names the builder struct fields. Slots take the lowercased
// member name, required members get a companion set flag, and the consume
// guard comes last. Fields and methods share one namespace in Go, but the
// setters are exported and the fields are not, so only the fields need
// disambiguation among themselves.
func (b *Builder) allocFields() {
	ns := codefmt.NewNS()
	b.slots = make(map[string]string, len(b.members))
	b.flags = make(map[string]string)

	for _, m := range b.members {
		slot := ns.Name(unexportName(m.Name))
		b.slots[m.Name] = slot
		if !m.Optional {
			b.flags[m.Name] = ns.Name(slot + "Set")
		}
	}
	b.built = ns.Name("built")
}

// unexportName lowercases the leading word of a member name to shape a
// field or parameter name, keeping acronyms whole: ID becomes id, HTMLBody
// becomes htmlBody.
func unexportName(name string) string {
	words := lcs.SplitWords(name)
	if len(words) == 0 || words[0] == strings.ToLower(words[0]) {
		return name
	}
	return strings.ToLower(words[0]) + strings.Join(words[1:], "")
}

func (b *Builder) requiredMembers() []Member {
	var required []Member
	for _, m := range b.members {
		if !m.Optional {
			required = append(required, m)
		}
	}
	return required
}

func (b *Builder) setterName(m Member) string {
	setter, _ := b.setters.Get(m.Name)
	return setter.(string)
}

// targetLink renders a doc link to the build target, package qualified when
// the target is foreign. Rendering through the writer keeps the qualifier
// consistent with the import aliases of the generated file.
func (b *Builder) targetLink(w *codefmt.Writer) string {
	if b.d.Func {
		return "[" + w.Sprintf("%o", b.d.Fn.Object()) + "]"
	}
	return "[" + w.Sprintf("%t", b.d.Target) + "]"
}

// targetLabel is the bare target name used in incompleteness errors.
func (b *Builder) targetLabel() string {
	_, name := targetSym(b.d)
	return name
}

// WriteDefineCode writes the full builder declaration set: the start
// function, the builder struct, one setter per member, and the finisher.
// The output goes through gofmt later, so indentation is left to it.
func (b *Builder) WriteDefineCode(w *codefmt.Writer) {
	b.writeStartCode(w)
	w.Printf("\n")
	b.writeStructCode(w)
	for _, m := range b.members {
		w.Printf("\n")
		b.writeSetterCode(w, m)
	}
	w.Printf("\n")
	b.writeFinishCode(w)
}

// writeStartCode writes the start function. It keeps the directive's own
// docs when there are any, and pre-fills defaults in declaration order.
func (b *Builder) writeStartCode(w *codefmt.Writer) {
	if b.d.Doc != nil {
		writeCommentCode(w, b.d.Doc)
		writeCommentCode(w, b.d.Comment)
	} else {
		w.Printf("// %s begins building a %s. Fill the members with setter calls in\n", b.d.StartName, b.targetLink(w))
		w.Printf("// any order, then finish with [%s.%s].\n", b.name, b.finish)
		writeCommentCode(w, b.d.Comment)
	}

	var defaults []Member
	for _, m := range b.members {
		if m.Default != nil {
			defaults = append(defaults, m)
		}
	}

	if len(defaults) == 0 {
		w.Printf("func %s() *%s { return &%s{} }\n", b.d.StartName, b.name, b.name)
		return
	}

	w.Printf("func %s() *%s {\n", b.d.StartName, b.name)
	w.Printf("return &%s{\n", b.name)
	for _, m := range defaults {
		expr := codefmt.RewriteImports(w, m.Default)
		w.Printf("%s: %c,\n", b.slots[m.Name], expr)
	}
	w.Printf("}\n")
	w.Printf("}\n")
}

func (b *Builder) writeStructCode(w *codefmt.Writer) {
	w.Printf("// %s accumulates members for %s. Each setter overwrites its\n", b.name, b.targetLink(w))
	w.Printf("// previous value, so the last call wins. A %s must be finished at\n", b.name)
	w.Printf("// most once and is not safe for concurrent use.\n")
	w.Printf("type %s struct {\n", b.name)
	for _, m := range b.members {
		w.Printf("%s %t\n", b.slots[m.Name], m.Type)
		if flag, ok := b.flags[m.Name]; ok {
			w.Printf("%s bool\n", flag)
		}
	}
	w.Printf("%s bool\n", b.built)
	w.Printf("}\n")
}

func (b *Builder) writeSetterCode(w *codefmt.Writer, m Member) {
	setter := b.setterName(m)

	if m.Doc != nil {
		writeCommentCode(w, m.Doc)
	} else if b.d.Func {
		w.Printf("// %s sets the %s parameter of %s.\n", setter, m.Name, b.targetLink(w))
	} else {
		w.Printf("// %s sets the %s field of %s.\n", setter, m.Name, b.targetLink(w))
	}

	// The parameter may not shadow the receiver.
	ns := codefmt.NewNS()
	ns.Reserve("b")
	param := ns.Name(unexportName(m.Name))

	if m.Variadic {
		w.Printf("func (b *%s) %s(%s ...%t) *%s {\n", b.name, setter, param, *m.Type.Elem, b.name)
	} else {
		w.Printf("func (b *%s) %s(%s %t) *%s {\n", b.name, setter, param, m.Type, b.name)
	}
	w.Printf("b.%s = %s\n", b.slots[m.Name], param)
	if flag, ok := b.flags[m.Name]; ok {
		w.Printf("b.%s = true\n", flag)
	}
	w.Printf("return b\n")
	w.Printf("}\n")
}

func (b *Builder) writeFinishCode(w *codefmt.Writer) {
	if b.d.Func {
		b.writeCallCode(w)
	} else {
		b.writeBuildCode(w)
	}
}

// writeBuildCode writes the finisher of a struct builder. It guards against
// reuse, reports required members that were never set, and constructs the
// keyed struct literal in declaration order.
func (b *Builder) writeBuildCode(w *codefmt.Writer) {
	required := b.requiredMembers()

	if len(required) != 0 {
		w.Printf("// %s finishes the builder and returns the built %s. It fails when\n", b.finish, b.targetLink(w))
		w.Printf("// a required member was never set. The builder must not be used again\n")
		w.Printf("// after %s returns.\n", b.finish)
		w.Printf("func (b *%s) %s() (%t, error) {\n", b.name, b.finish, b.d.Target)
	} else {
		w.Printf("// %s finishes the builder and returns the built %s. The builder\n", b.finish, b.targetLink(w))
		w.Printf("// must not be used again after %s returns.\n", b.finish)
		w.Printf("func (b *%s) %s() %t {\n", b.name, b.finish, b.d.Target)
	}

	b.writeConsumeCode(w)

	if len(required) != 0 {
		varMissing := b.writeMissingCode(w, required)
		varErrors := w.Import("github.com/sublee/buildgen/pkg/buildgenerrors", "buildgenerrors")
		varZero := w.Name("zero")
		w.Printf("if %s != nil {\n", varMissing)
		w.Printf("var %s %t\n", varZero, b.d.Target)
		w.Printf("return %s, %s.Incomplete(%q, %s...)\n", varZero, varErrors, b.targetLabel(), varMissing)
		w.Printf("}\n")
	}

	w.Printf("\n")
	w.Printf("return %t{\n", b.d.Target)
	for _, m := range b.members {
		w.Printf("%s: b.%s,\n", m.Name, b.slots[m.Name])
	}
	if len(required) != 0 {
		w.Printf("}, nil\n")
	} else {
		w.Printf("}\n")
	}
	w.Printf("}\n")
}

// writeCallCode writes the finisher of a function builder. The result list
// mirrors the target function. When the target cannot report an error
// itself but the builder has required members, an error result is appended
// for the completeness failure.
func (b *Builder) writeCallCode(w *codefmt.Writer) {
	required := b.requiredMembers()
	results := b.d.Fn.Results()
	hasErr := b.d.Fn.HasErr() || len(required) != 0

	if len(required) != 0 {
		w.Printf("// %s calls %s with the accumulated arguments. It fails when a\n", b.finish, b.targetLink(w))
		w.Printf("// required member was never set. The builder must not be used again\n")
		w.Printf("// after %s returns.\n", b.finish)
	} else {
		w.Printf("// %s calls %s with the accumulated arguments. The builder must\n", b.finish, b.targetLink(w))
		w.Printf("// not be used again after %s returns.\n", b.finish)
	}

	w.Printf("func (b *%s) %s()", b.name, b.finish)
	switch {
	case len(results) == 0 && hasErr:
		w.Printf(" error")
	case len(results) == 1 && !hasErr:
		w.Printf(" %t", results[0])
	case len(results) != 0 || hasErr:
		w.Printf(" (")
		for i, r := range results {
			if i != 0 {
				w.Printf(", ")
			}
			w.Printf("%t", r)
		}
		if hasErr {
			w.Printf(", error")
		}
		w.Printf(")")
	}
	w.Printf(" {\n")

	b.writeConsumeCode(w)

	if len(required) != 0 {
		varMissing := b.writeMissingCode(w, required)
		varErrors := w.Import("github.com/sublee/buildgen/pkg/buildgenerrors", "buildgenerrors")
		w.Printf("if %s != nil {\n", varMissing)
		varZeros := make([]string, len(results))
		for i, r := range results {
			varZeros[i] = w.Name("zero")
			w.Printf("var %s %t\n", varZeros[i], r)
		}
		w.Printf("return ")
		for _, varZero := range varZeros {
			w.Printf("%s, ", varZero)
		}
		w.Printf("%s.Incomplete(%q, %s...)\n", varErrors, b.targetLabel(), varMissing)
		w.Printf("}\n")
	}

	w.Printf("\n")
	b.writeForwardCode(w, results)
	w.Printf("}\n")
}

// writeForwardCode writes the call to the target function and forwards its
// results. The call expression is taken from the directive itself so an
// explicit generic instantiation survives as written.
func (b *Builder) writeForwardCode(w *codefmt.Writer, results []typeinfo.Type) {
	fnExpr := codefmt.RewriteImports(w, b.d.FnExpr)

	var args strings.Builder
	for i, m := range b.members {
		if i != 0 {
			args.WriteString(", ")
		}
		args.WriteString("b." + b.slots[m.Name])
		if m.Variadic {
			args.WriteString("...")
		}
	}

	switch {
	case b.d.Fn.HasErr():
		// The finisher result list mirrors the target exactly.
		w.Printf("return %c(%s)\n", fnExpr, args.String())

	case len(b.requiredMembers()) == 0:
		if len(results) == 0 {
			w.Printf("%c(%s)\n", fnExpr, args.String())
		} else {
			w.Printf("return %c(%s)\n", fnExpr, args.String())
		}

	default:
		// The target reports no error itself, so nil fills the appended
		// error result.
		switch len(results) {
		case 0:
			w.Printf("%c(%s)\n", fnExpr, args.String())
			w.Printf("return nil\n")
		case 1:
			w.Printf("return %c(%s), nil\n", fnExpr, args.String())
		default:
			varResults := make([]string, len(results))
			for i := range results {
				varResults[i] = w.Name("r")
			}
			w.Printf("%s := %c(%s)\n", strings.Join(varResults, ", "), fnExpr, args.String())
			w.Printf("return %s, nil\n", strings.Join(varResults, ", "))
		}
	}
}

// writeConsumeCode writes the reuse guard shared by both finishers.
func (b *Builder) writeConsumeCode(w *codefmt.Writer) {
	w.Printf("if b.%s {\n", b.built)
	w.Printf("panic(%q)\n", "buildgen: "+b.name+" used after "+b.finish)
	w.Printf("}\n")
	w.Printf("b.%s = true\n", b.built)
	w.Printf("\n")
}

// writeMissingCode collects the names of required members that were never
// set, in declaration order.
func (b *Builder) writeMissingCode(w *codefmt.Writer, required []Member) string {
	varMissing := w.Name("missing")
	w.Printf("var %s []string\n", varMissing)
	for _, m := range required {
		w.Printf("if !b.%s {\n", b.flags[m.Name])
		w.Printf("%s = append(%s, %q)\n", varMissing, varMissing, m.Name)
		w.Printf("}\n")
	}
	return varMissing
}

// writeCommentCode reprints a comment group from the directive file.
func writeCommentCode(w *codefmt.Writer, group *ast.CommentGroup) {
	if group == nil {
		return
	}
	for _, c := range group.List {
		w.Printf("%s\n", c.Text)
	}
}
