// Package transpile rewrites server-authored web component sources into
// client runtime modules. Element constructors become tuple nodes built
// with client.N, reactive primitives bind to the client re-exports, and
// the component function is registered as a custom element. The
// authored logic itself, control flow, handlers, prop reads, is carried
// over verbatim.
package transpile

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

const (
	modulePath   = "github.com/veltaweb/velta"
	clientImport = modulePath + "/pkg/client"
)

// TranspileWebComponent rewrites one authored component source file
// into its client form. Source that does not parse, or that reaches
// for server-only constructs, fails with a positioned error and no
// output is produced.
func TranspileWebComponent(src string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "component.go", src, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("transpile: %w", err)
	}

	r := newRewriter(fset)
	r.collectImports(file)

	comp := r.findComponent(file)
	if comp == nil {
		return "", fmt.Errorf("transpile: no exported component function returning a node found")
	}

	astutil.Apply(file, nil, r.rewrite)
	if r.err != nil {
		return "", r.err
	}

	r.rewriteImports(file)
	appendRegistration(file, comp.Name.Name)

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, file); err != nil {
		return "", fmt.Errorf("transpile: print rewritten source: %w", err)
	}
	// Rewritten nodes carry no source positions, which makes the printer
	// emit artifacts such as trailing commas in parameter lists; a
	// format pass normalizes the output.
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("transpile: format rewritten source: %w", err)
	}
	return string(out), nil
}

// ElementName returns the custom element name a component function
// registers under. The "v-" prefix guarantees the mandatory dash.
func ElementName(funcName string) string {
	return "v-" + kebabCase(funcName)
}

// appendRegistration emits the package-level registration:
//
//	var _ = client.Define("v-counter", Counter)
func appendRegistration(file *ast.File, funcName string) {
	decl := &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent("_")},
			Values: []ast.Expr{clientCall("Define",
				strLit(ElementName(funcName)),
				ast.NewIdent(funcName))},
		}},
	}
	file.Decls = append(file.Decls, decl)
}
