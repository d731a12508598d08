// Package axischeck reports vectors built from two components on the same
// axis. The type checker accepts them, as it cannot compare the strings
// returned by the axes' Name methods; this package compares them after type
// checking.
//
// Instantiations inside generic functions are checked at each call of the
// function, with its type arguments substituted. Only one level is followed:
// a generic function passing its type parameters on to another generic
// function is not reported.
package axischeck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// PhysPath is the import path of the package whose constructors are checked.
const PhysPath = "github.com/zeusync/physunits/pkg/phys"

// checked lists the generic phys objects whose type arguments are all axes
// followed by one unit.
var checked = map[string]bool{
	"Plane":     true,
	"TryPlane":  true,
	"Volume":    true,
	"TryVolume": true,
	"Extend":    true,
	"TryExtend": true,
	"Vec2D":     true,
	"Vec3D":     true,
}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps

// Finding is one instantiation using an axis twice. Via names the generic
// helper whose type arguments led to it, if any.
type Finding struct {
	Pos  token.Position
	Func string
	Axis string
	Via  string
}

func (f Finding) String() string {
	if f.Via != "" {
		return fmt.Sprintf("%s: phys.%s uses axis %q more than once through %s", f.Pos, f.Func, f.Axis, f.Via)
	}
	return fmt.Sprintf("%s: phys.%s uses axis %q more than once", f.Pos, f.Func, f.Axis)
}

// Config selects what is loaded. A zero Config checks the non-test files of
// packages relative to the working directory.
type Config struct {
	Dir   string
	Tests bool
}

// Run loads the packages matching patterns and checks them.
func Run(cfg Config, patterns ...string) ([]Finding, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode, Dir: cfg.Dir, Tests: cfg.Tests}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var loadErrs []error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			loadErrs = append(loadErrs, e)
		}
	})
	if len(loadErrs) > 0 {
		return nil, fmt.Errorf("load packages: %w", errors.Join(loadErrs...))
	}

	return Check(pkgs), nil
}

// Check inspects already loaded packages. They must carry syntax and type
// information, for their dependencies too.
func Check(pkgs []*packages.Package) []Finding {
	names := indexNames(pkgs)
	helpers := indexHelpers(pkgs)

	type key struct {
		pos  token.Position
		name string
	}
	var (
		findings []Finding
		seen     = map[key]bool{}
	)
	add := func(f Finding) {
		// With Tests set a file may belong to several loaded packages.
		if k := (key{f.Pos, f.Func}); !seen[k] {
			seen[k] = true
			findings = append(findings, f)
		}
	}

	for _, p := range pkgs {
		for ident, inst := range p.TypesInfo.Instances {
			obj := p.TypesInfo.Uses[ident]
			if obj == nil || obj.Pkg() == nil {
				continue
			}
			pos := p.Fset.Position(ident.Pos())

			if isChecked(obj) {
				if axis, ok := collision(typeArgs(inst.TypeArgs), names); ok {
					add(Finding{Pos: pos, Func: obj.Name(), Axis: axis})
				}
				continue
			}

			fn, ok := obj.(*types.Func)
			if !ok {
				continue
			}
			fn = fn.Origin()
			uses := helpers[fn]
			if len(uses) == 0 {
				continue
			}
			subst := map[*types.TypeParam]types.Type{}
			tparams := fn.Type().(*types.Signature).TypeParams()
			for i := 0; i < tparams.Len() && i < inst.TypeArgs.Len(); i++ {
				subst[tparams.At(i)] = inst.TypeArgs.At(i)
			}
			for _, use := range uses {
				args := make([]types.Type, len(use.args))
				for i, arg := range use.args {
					if tp, ok := arg.(*types.TypeParam); ok && subst[tp] != nil {
						arg = subst[tp]
					}
					args[i] = arg
				}
				if axis, ok := collision(args, names); ok {
					add(Finding{Pos: pos, Func: use.name, Axis: axis, Via: fn.Name()})
				}
			}
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i].Pos, findings[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return findings[i].Func < findings[j].Func
	})
	return findings
}

func isChecked(obj types.Object) bool {
	return obj.Pkg() != nil && obj.Pkg().Path() == PhysPath && checked[obj.Name()]
}

func typeArgs(list *types.TypeList) []types.Type {
	out := make([]types.Type, list.Len())
	for i := range out {
		out[i] = list.At(i)
	}
	return out
}

// collision compares every pair of axis arguments. The last type argument is
// the unit. Arguments that are still type parameters are not compared.
func collision(args []types.Type, names map[*types.Func]string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	axes := make([]types.Type, 0, len(args)-1)
	for _, arg := range args[:len(args)-1] {
		t := types.Unalias(arg)
		if _, generic := t.(*types.TypeParam); generic {
			return "", false
		}
		axes = append(axes, t)
	}

	for i := range axes {
		for j := i + 1; j < len(axes); j++ {
			ni, iok := axisName(axes[i], names)
			nj, jok := axisName(axes[j], names)
			if types.Identical(axes[i], axes[j]) {
				if !iok {
					ni = axes[i].String()
				}
				return ni, true
			}
			if iok && jok && ni == nj {
				return ni, true
			}
		}
	}
	return "", false
}

// helperUse is a checked phys instantiation inside a generic function whose
// type arguments depend on the function's type parameters.
type helperUse struct {
	name string
	args []types.Type
}

// indexHelpers collects, per generic function, the checked phys
// instantiations in its signature and body that use its type parameters.
func indexHelpers(pkgs []*packages.Package) map[*types.Func][]helperUse {
	helpers := map[*types.Func][]helperUse{}
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		if p.TypesInfo == nil {
			return
		}
		for _, file := range p.Syntax {
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if !ok || fd.Type.TypeParams == nil {
					continue
				}
				fn, ok := p.TypesInfo.Defs[fd.Name].(*types.Func)
				if !ok {
					continue
				}
				ast.Inspect(fd, func(n ast.Node) bool {
					ident, ok := n.(*ast.Ident)
					if !ok {
						return true
					}
					inst, ok := p.TypesInfo.Instances[ident]
					obj := p.TypesInfo.Uses[ident]
					if !ok || obj == nil || !isChecked(obj) {
						return true
					}
					args := typeArgs(inst.TypeArgs)
					for _, arg := range args {
						if _, generic := arg.(*types.TypeParam); generic {
							helpers[fn] = append(helpers[fn], helperUse{name: obj.Name(), args: args})
							break
						}
					}
					return true
				})
			}
		}
	})
	return helpers
}

// axisName resolves the constant returned by the Name method of t.
func axisName(t types.Type, names map[*types.Func]string) (string, bool) {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "Name")
	fn, ok := obj.(*types.Func)
	if !ok {
		return "", false
	}
	name, ok := names[fn.Origin()]
	return name, ok
}

// indexNames collects every method called Name whose body is a single return
// of a string constant, across pkgs and their dependencies.
func indexNames(pkgs []*packages.Package) map[*types.Func]string {
	names := map[*types.Func]string{}
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		if p.TypesInfo == nil {
			return
		}
		for _, file := range p.Syntax {
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if !ok || fd.Recv == nil || fd.Name.Name != "Name" || fd.Body == nil || len(fd.Body.List) != 1 {
					continue
				}
				ret, ok := fd.Body.List[0].(*ast.ReturnStmt)
				if !ok || len(ret.Results) != 1 {
					continue
				}
				tv, ok := p.TypesInfo.Types[ret.Results[0]]
				if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
					continue
				}
				if fn, ok := p.TypesInfo.Defs[fd.Name].(*types.Func); ok {
					names[fn] = constant.StringVal(tv.Value)
				}
			}
		}
	})
	return names
}
