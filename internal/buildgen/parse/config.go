package parse

import (
	"errors"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sublee/buildgen/internal/codefmt"
)

// Rename is a per-member setter name override configured by
// [buildgen.Rename].
type Rename struct {
	Setter string
	Pos    token.Pos
}

// Requirement forces a member to be optional or required, configured by
// [buildgen.Optional] and [buildgen.Required].
type Requirement struct {
	Optional bool
	Pos      token.Pos
}

// Default is a per-member default value configured by [buildgen.Default].
// The expression is injected verbatim into the generated start function.
type Default struct {
	Expr ast.Expr
	Pos  token.Pos
}

// Config holds the effective options of a module or a directive. A directive
// config starts as a fork of its module's config; per-member options only
// ever appear at the directive level.
type Config struct {
	FinishName   string
	SetterPrefix string

	TrimCommonWordPrefix bool
	TrimCommonWordSuffix bool

	BuilderName   string
	BuilderNameAt token.Pos

	// Per-member options keyed by member name, in option order.
	Renames      *linkedhashmap.Map // string -> Rename
	Requirements *linkedhashmap.Map // string -> Requirement
	Defaults     *linkedhashmap.Map // string -> Default
}

// NewConfig creates an empty config.
func NewConfig() Config {
	return Config{
		Renames:      linkedhashmap.New(),
		Requirements: linkedhashmap.New(),
		Defaults:     linkedhashmap.New(),
	}
}

// Fork copies the config for a directive. Scoped scalar options are
// inherited and may be overridden; per-member options start fresh because
// they address members of one specific target.
func (cfg Config) Fork() Config {
	c := NewConfig()
	c.FinishName = cfg.FinishName
	c.SetterPrefix = cfg.SetterPrefix
	c.TrimCommonWordPrefix = cfg.TrimCommonWordPrefix
	c.TrimCommonWordSuffix = cfg.TrimCommonWordSuffix
	return c
}

// GetRename returns the Rename configured for the member.
func (cfg Config) GetRename(member string) (Rename, bool) {
	v, ok := cfg.Renames.Get(member)
	if !ok {
		return Rename{}, false
	}
	return v.(Rename), true
}

// GetRequirement returns the Requirement configured for the member.
func (cfg Config) GetRequirement(member string) (Requirement, bool) {
	v, ok := cfg.Requirements.Get(member)
	if !ok {
		return Requirement{}, false
	}
	return v.(Requirement), true
}

// GetDefault returns the Default configured for the member.
func (cfg Config) GetDefault(member string) (Default, bool) {
	v, ok := cfg.Defaults.Get(member)
	if !ok {
		return Default{}, false
	}
	return v.(Default), true
}

// ParseConfig parses option arguments into the config. paths resolves member
// path arguments against the directive's target; it is nil when parsing
// module options, which cannot address members.
func (p *Parser) ParseConfig(cfg *Config, args []ast.Expr, paths pathParser) error {
	var errs error
	for _, arg := range args {
		if _, ok := arg.(*ast.Ident); ok {
			err := codefmt.Errorf(p, arg, "option must be inlined, not assigned to variable")
			errs = errors.Join(errs, err)
			continue
		}

		call, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			// Probably, this case is unreachable because every option type is
			// unexported. The only way to create a valid option is to call an
			// option directive function, or assign it to a variable. The
			// latter one is caught above.
			err := codefmt.Errorf(p, arg, "cannot use %c as option", arg)
			errs = errors.Join(errs, err)
			continue
		}

		if err := p.ParseOption(cfg, call, paths); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// ParseOption parses a single option call into the config.
func (p *Parser) ParseOption(cfg *Config, call *ast.CallExpr, paths pathParser) error {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil || callee.Pkg() == nil || !IsBuildgenImport(callee.Pkg().Path()) {
		return codefmt.Errorf(p, call, "option must be buildgen directive")
	}

	name := callee.Name()
	switch name {
	case "Name":
		return p.parseOptionName(cfg, call)
	case "Finish":
		return p.parseOptionFinish(cfg, call)
	case "SetterPrefix":
		return p.parseOptionSetterPrefix(cfg, call)

	case "Rename":
		return p.parseOptionRename(cfg, call, paths)
	case "RenameTrimCommonWordPrefix":
		return p.parseOptionTrim(cfg, call, &cfg.TrimCommonWordPrefix)
	case "RenameTrimCommonWordSuffix":
		return p.parseOptionTrim(cfg, call, &cfg.TrimCommonWordSuffix)

	case "Optional":
		return p.parseOptionRequirement(cfg, call, paths, true)
	case "Required":
		return p.parseOptionRequirement(cfg, call, paths, false)
	case "Default":
		return p.parseOptionDefault(cfg, call, paths)
	}

	return codefmt.Errorf(p, call.Fun, "%s is not supported option", name)
}

func (p *Parser) parseOptionName(cfg *Config, call *ast.CallExpr) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	name, err := parseArgExpr[string](p, expr)
	if err != nil {
		return err
	}

	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return codefmt.Errorf(p, expr, "builder name must be an exported identifier; got %q", name)
	}

	if cfg.BuilderName != "" {
		return codefmt.Errorf(p, call, "builder name already configured\n\tprevious option at %b", codefmt.Pos(cfg.BuilderNameAt))
	}

	cfg.BuilderName = name
	cfg.BuilderNameAt = call.Pos()
	return nil
}

func (p *Parser) parseOptionFinish(cfg *Config, call *ast.CallExpr) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	name, err := parseArgExpr[string](p, expr)
	if err != nil {
		return err
	}

	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return codefmt.Errorf(p, expr, "finisher name must be an exported identifier; got %q", name)
	}

	cfg.FinishName = name
	return nil
}

func (p *Parser) parseOptionSetterPrefix(cfg *Config, call *ast.CallExpr) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	prefix, err := parseArgExpr[string](p, expr)
	if err != nil {
		return err
	}

	if prefix != "" && (!token.IsIdentifier(prefix) || !token.IsExported(prefix)) {
		return codefmt.Errorf(p, expr, "setter prefix must be an exported identifier; got %q", prefix)
	}

	cfg.SetterPrefix = prefix
	return nil
}

func (p *Parser) parseOptionTrim(cfg *Config, call *ast.CallExpr, flag *bool) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	enable, err := parseArgExpr[bool](p, expr)
	if err != nil {
		return err
	}

	*flag = enable
	return nil
}

func (p *Parser) parseOptionRename(cfg *Config, call *ast.CallExpr, paths pathParser) error {
	pathExpr, setterExpr, err := needArgs2(p, call)
	if err != nil {
		return err
	}

	path, err := p.parsePathArg(pathExpr, paths)
	if err != nil {
		return err
	}

	setter, err := parseArgExpr[string](p, setterExpr)
	if err != nil {
		return err
	}

	if !token.IsIdentifier(setter) || !token.IsExported(setter) {
		return codefmt.Errorf(p, setterExpr, "setter name must be an exported identifier; got %q", setter)
	}

	if prev, ok := cfg.GetRename(path.Name); ok {
		return codefmt.Errorf(p, call, "setter name for %s already configured\n\tprevious option at %b", path.Name, codefmt.Pos(prev.Pos))
	}

	cfg.Renames.Put(path.Name, Rename{Setter: setter, Pos: call.Pos()})
	return nil
}

func (p *Parser) parseOptionRequirement(cfg *Config, call *ast.CallExpr, paths pathParser, optional bool) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	path, err := p.parsePathArg(expr, paths)
	if err != nil {
		return err
	}

	if prev, ok := cfg.GetRequirement(path.Name); ok {
		return codefmt.Errorf(p, call, "Optional/Required for %s already configured\n\tprevious option at %b", path.Name, codefmt.Pos(prev.Pos))
	}
	if def, ok := cfg.GetDefault(path.Name); ok && !optional {
		return codefmt.Errorf(p, call, "cannot require %s; it has a default\n\tprevious option at %b", path.Name, codefmt.Pos(def.Pos))
	}

	cfg.Requirements.Put(path.Name, Requirement{Optional: optional, Pos: call.Pos()})
	return nil
}

func (p *Parser) parseOptionDefault(cfg *Config, call *ast.CallExpr, paths pathParser) error {
	pathExpr, valueExpr, err := needArgs2(p, call)
	if err != nil {
		return err
	}

	path, err := p.parsePathArg(pathExpr, paths)
	if err != nil {
		return err
	}

	if err := p.checkAssignable(valueExpr, path.Type.Type()); err != nil {
		return err
	}

	if req, ok := cfg.GetRequirement(path.Name); ok && !req.Optional {
		return codefmt.Errorf(p, call, "cannot default %s; it is required\n\tprevious option at %b", path.Name, codefmt.Pos(req.Pos))
	}
	if prev, ok := cfg.GetDefault(path.Name); ok {
		return codefmt.Errorf(p, call, "default for %s already configured\n\tprevious option at %b", path.Name, codefmt.Pos(prev.Pos))
	}

	cfg.Defaults.Put(path.Name, Default{Expr: valueExpr, Pos: call.Pos()})
	return nil
}

func (p *Parser) parsePathArg(expr ast.Expr, paths pathParser) (Path, error) {
	if paths == nil {
		// Unreachable through the typed option API: per-member options do
		// not satisfy the module option interface.
		return Path{}, codefmt.Errorf(p, expr, "member options cannot be used with buildgen.Module")
	}
	if p.IsNil(expr) {
		return Path{}, codefmt.Errorf(p, expr, "cannot use nil as member")
	}
	return paths.ParsePath(p, expr)
}

// checkAssignable reports an error unless the expression can be assigned to
// the member type. Untyped constants arrive with their default type because
// the option parameter is any, so constants get a representability check
// instead.
func (p *Parser) checkAssignable(expr ast.Expr, to types.Type) error {
	tv := p.Pkg().TypesInfo.Types[expr]
	if tv.Type == nil {
		return codefmt.Errorf(p, expr, "cannot resolve type of %c", expr)
	}

	if types.AssignableTo(tv.Type, to) {
		return nil
	}
	if tv.Value != nil && representable(tv.Value, to) {
		return nil
	}

	return codefmt.Errorf(p, expr, "cannot use %c (%t) as default for %t member", expr, tv.Type, to)
}

func representable(v constant.Value, t types.Type) bool {
	basic, ok := types.Unalias(t).Underlying().(*types.Basic)
	if !ok {
		return false
	}

	info := basic.Info()
	switch {
	case info&types.IsInteger != 0:
		return constant.ToInt(v).Kind() == constant.Int
	case info&types.IsFloat != 0:
		return constant.ToFloat(v).Kind() == constant.Float
	case info&types.IsComplex != 0:
		return constant.ToComplex(v).Kind() == constant.Complex
	case info&types.IsString != 0:
		return v.Kind() == constant.String
	case info&types.IsBoolean != 0:
		return v.Kind() == constant.Bool
	}
	return false
}
