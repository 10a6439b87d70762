package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sublee/buildgen/internal/lcs"
)

// NS manages unique names in a namespace.
type NS map[string]struct{}

// NewNS creates a new namespace which reserves all names in the given
// scopes.
func NewNS(scopes ...*types.Scope) NS {
	ns := make(NS)
	for _, scope := range scopes {
		for _, name := range scope.Names() {
			ns.Reserve(name)
		}
	}
	return ns
}

// Reserve marks a name as used in the namespace. If the name is already used,
// it returns false.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name returns a unique name in its namespace. Once a name is used, it is
// reserved in the namespace to avoid conflicts. If conflicts occur, a
// numbering suffix is added.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	if name == "" {
		panic("empty name")
	}
	if token.Lookup(name).IsKeyword() {
		name += "_"
	}
	if ns == nil {
		return name
	}
	for name := range DisambiguateName(name) {
		if ok := ns.Reserve(name); ok {
			return name
		}
	}
	panic("unreachable")
}

// ExportName converts a member name into an exported Go identifier suitable
// for a setter name. All-lowercase words are title-cased, acronyms and
// mixed-case words are kept intact, and underscores are dropped.
//
//	"name"        => "Name"
//	"max_retries" => "MaxRetries"
//	"userID"      => "UserID"
//
// Panics if the name is empty or contains no identifier characters.
func ExportName(name string) string {
	if name == "" {
		panic("empty name")
	}

	title := cases.Title(language.English)

	var b strings.Builder
	for _, word := range lcs.SplitWords(name) {
		if strings.Trim(word, "_") == "" {
			continue
		}
		if word == strings.ToLower(word) {
			b.WriteString(title.String(word))
		} else {
			b.WriteString(word)
		}
	}

	if b.Len() == 0 {
		panic(fmt.Sprintf("cannot export name %q", name))
	}
	return b.String()
}

// DisambiguateName offers an alternative unique names.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		// Postfix "_" to the name if it already ends with a number.
		// "answer42_2" is better than "answer422".
		sep := ""
		if name[len(name)-1] != '_' && name[len(name)-1] >= '0' && name[len(name)-1] <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
