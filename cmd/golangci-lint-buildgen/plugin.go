// golangcilintbuildgen package provides a plugin for golangci-lint to
// integrate the Buildgen analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-buildgen binary that you can use to lint
// your Go code with the Buildgen analyzer.
package golangcilintbuildgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/buildgen/pkg/buildgenanalysis"
)

func init() {
	register.Plugin("buildgen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return BuildgenLinter{}, nil
}

type BuildgenLinter struct{}

func (BuildgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{buildgenanalysis.Analyzer}, nil
}

// GetLoadMode requests type information because the analyzer resolves
// directive calls through the type checker.
func (BuildgenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
