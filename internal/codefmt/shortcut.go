package codefmt

import (
	"go/token"
	"io"

	"golang.org/x/tools/go/packages"
)

// Sprintf is a shortcut for [Formatter.Sprintf].
func Sprintf(pkger Pkger, format string, args ...any) string {
	return newByPkger(pkger).Sprintf(format, args...)
}

// Fprintf is a shortcut for [Formatter.Fprintf].
func Fprintf(pkger Pkger, w io.Writer, format string, args ...any) (int, error) {
	return newByPkger(pkger).Fprintf(w, format, args...)
}

// Errorf is a shortcut for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

// pkger wraps a package to implement [Pkger].
type pkger struct{ pkg *packages.Package }

func (p pkger) Pkg() *packages.Package { return p.pkg }

// Pkg wraps a package to implement [Pkger].
func Pkg(pkg *packages.Package) Pkger { return pkger{pkg} }

// poser wraps a position to implement [Poser].
type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }

// Pos wraps a position to implement [Poser].
func Pos(pos token.Pos) Poser { return poser{pos} }
