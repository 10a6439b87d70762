package buildgeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildgen/internal/buildgen/parse"
)

var Version string

// Main is the main entry point for Buildgen. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags to
// use when loading packages. tests indicates whether to include test files.
// outFile is the name of the output file to generate in each package. And
// patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	logger := log.FromContext(ctx)

	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}
	logger.Debug("packages loaded", "count", len(pkgs))

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		bg, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := bg.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := bg.Generate()
		if len(code) == 0 {
			logger.Debug("no builders", "package", pkg.PkgPath)
			continue
		}
		logger.Debug("builders generated", "package", pkg.PkgPath, "builders", len(bg.builders), "bytes", len(code))

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load loads packages with the buildgen build tag enabled.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=buildgen"},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages. Type errors with a position
	// are judged per package by [loadErrors] instead: under the buildgen
	// tag the generated file is excluded, so plain files referencing the
	// not-yet-generated builders legitimately fail to type-check.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}
			if err.Kind == packages.TypeError {
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// loadErrors filters the load errors of a package down to the ones that
// block generation.
//
// Generation only needs the buildgen files and the packages they depend on
// to be well-typed. A type error in a plain file of the target package is
// expected between edits of a directive and the next regeneration, so it
// does not block. Type errors inside buildgen files and errors without a
// position do.
func loadErrors(p *parse.Parser, pkg *packages.Package) error {
	buildgenFiles := make(map[string]bool)
	for _, file := range p.BuildgenGoFiles() {
		buildgenFiles[pkg.Fset.File(file.Pos()).Name()] = true
	}

	plainFiles := make(map[string]bool)
	for _, name := range pkg.GoFiles {
		if !buildgenFiles[name] {
			plainFiles[name] = true
		}
	}

	var errs error
	for _, err := range pkg.Errors {
		if err.Kind == packages.TypeError && err.Pos != "" {
			path, _, _ := strings.Cut(err.Pos, ":")
			if plainFiles[path] {
				continue
			}
		}
		errs = errors.Join(errs, err)
	}
	return errs
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
