package testdata

import "github.com/sublee/buildgen" // want `file must have "//go:build buildgen" constraint when importing buildgen`

var _ = buildgen.Module()
