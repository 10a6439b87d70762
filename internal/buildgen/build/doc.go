package build

import (
	"errors"
	"go/doc/comment"
	"go/types"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sublee/buildgen/internal/buildgen/parse"
	"github.com/sublee/buildgen/internal/codefmt"
)

// CheckDocs rejects member docs that refer to the build target by its bare
// name, such as [Post] or [Post.Title]. Setter docs are carried into the
// generated package, and there a bare reference resolves against the
// builder's package instead of the target's. Same-package targets keep
// resolving after the move, so only foreign targets are checked.
func CheckDocs(p *parse.Parser, d *parse.Directive, members []Member) error {
	pkg, name := targetSym(d)
	if pkg == nil || pkg == p.Pkg().Types {
		return nil
	}

	var errs error
	for _, m := range members {
		if m.Doc == nil {
			continue
		}

		forms := selfReferences(m.Doc.Text(), name)
		if forms.Empty() {
			continue
		}

		var list []string
		for _, form := range forms.Values() {
			list = append(list, form.(string))
		}

		err := codefmt.Errorf(d, codefmt.Pos(m.Doc.Pos()),
			"docs of %s refer to %s; the reference breaks when the docs move into this package, so qualify the target as [%s.%s]",
			m.Name, strings.Join(list, ", "), pkg.Name(), name)
		errs = errors.Join(errs, err)
	}
	return errs
}

// targetSym returns the package and the bare name of the build target.
func targetSym(d *parse.Directive) (*types.Package, string) {
	if d.Func {
		return d.Fn.Pkg(), d.Fn.Name()
	}
	return d.Target.Pkg(), d.Target.Named.Obj().Name()
}

// selfReferences collects bracketed references to name in a doc comment, in
// order of appearance. Both proper doc links and bracketed text that fails
// to link, such as [`Post`], are caught. References qualified with a package
// name are fine and not collected.
func selfReferences(text, name string) *linkedhashset.Set {
	forms := linkedhashset.New()

	var cp comment.Parser
	cp.LookupPackage = func(string) (string, bool) { return "", false }
	cp.LookupSym = func(recv, name string) bool { return true }
	doc := cp.Parse(text)

	var scanText func(ts []comment.Text)
	scanText = func(ts []comment.Text) {
		for _, t := range ts {
			switch t := t.(type) {
			case comment.Plain:
				scanBrackets(string(t), name, forms)
			case comment.Italic:
				scanBrackets(string(t), name, forms)
			case *comment.Link:
				scanText(t.Text)
			case *comment.DocLink:
				if t.ImportPath == "" && (t.Name == name || t.Recv == name) {
					forms.Add("[" + textString(t.Text) + "]")
				}
			}
		}
	}

	var scanBlocks func(bs []comment.Block)
	scanBlocks = func(bs []comment.Block) {
		for _, b := range bs {
			switch b := b.(type) {
			case *comment.Heading:
				scanText(b.Text)
			case *comment.Paragraph:
				scanText(b.Text)
			case *comment.List:
				for _, item := range b.Items {
					scanBlocks(item.Content)
				}
			}
		}
	}
	scanBlocks(doc.Content)

	return forms
}

// scanBrackets finds [X] spans left as plain text because X did not parse as
// a link. The parser may have turned quotes typographic already, so those
// are stripped along with a pointer star before comparing against name.
func scanBrackets(s, name string, forms *linkedhashset.Set) {
	for {
		i := strings.IndexByte(s, '[')
		if i < 0 {
			return
		}
		s = s[i+1:]

		j := strings.IndexByte(s, ']')
		if j < 0 {
			return
		}
		inner := s[:j]
		s = s[j+1:]

		trimmed := strings.Trim(inner, "*`“”‘’'")
		if trimmed == name || strings.HasPrefix(trimmed, name+".") {
			forms.Add("[" + inner + "]")
		}
	}
}

func textString(ts []comment.Text) string {
	var b strings.Builder
	for _, t := range ts {
		switch t := t.(type) {
		case comment.Plain:
			b.WriteString(string(t))
		case comment.Italic:
			b.WriteString(string(t))
		case *comment.Link:
			b.WriteString(textString(t.Text))
		case *comment.DocLink:
			b.WriteString(textString(t.Text))
		}
	}
	return b.String()
}
