package transpile

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// ErrServerConstruct marks rejections of source that only makes sense
// on the server: request contexts, server element references, anything
// without a client-side shape. Distinguishable from parse failures via
// IsServerConstruct.
var ErrServerConstruct = errors.New("server-only construct")

// IsServerConstruct reports whether err is a server-construct
// rejection rather than a parse or usage error.
func IsServerConstruct(err error) bool {
	return errors.Is(err, ErrServerConstruct)
}

// import roles the rewriter cares about.
const (
	roleEl       = "el"
	roleJSX      = "jsx"
	roleReactive = "reactive"
)

type importInfo struct {
	role string
	path string
	name string // local name in the source
}

type rewriter struct {
	fset    *token.FileSet
	err     error
	imports []importInfo
	roles   map[string]string // local name -> role
}

func newRewriter(fset *token.FileSet) *rewriter {
	return &rewriter{fset: fset, roles: map[string]string{}}
}

func (r *rewriter) errorf(n ast.Node, format string, args ...any) {
	if r.err == nil {
		pos := r.fset.Position(n.Pos())
		r.err = fmt.Errorf("transpile: %s: %s", pos, fmt.Sprintf(format, args...))
	}
}

// reject records a server-construct rejection, wrapping
// ErrServerConstruct so the build layer can report it apart from
// parse failures.
func (r *rewriter) reject(n ast.Node, format string, args ...any) {
	if r.err == nil {
		pos := r.fset.Position(n.Pos())
		r.err = fmt.Errorf("transpile: %s: %s: %w", pos, fmt.Sprintf(format, args...), ErrServerConstruct)
	}
}

// collectImports records the local names the source uses for the
// framework packages the transpiler must rewrite away.
func (r *rewriter) collectImports(file *ast.File) {
	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		var role string
		switch p {
		case modulePath + "/el":
			role = roleEl
		case modulePath + "/pkg/jsx":
			role = roleJSX
		case modulePath + "/pkg/reactive":
			role = roleReactive
		default:
			continue
		}

		name := path.Base(p)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		r.imports = append(r.imports, importInfo{role: role, path: p, name: name})
		r.roles[name] = role
	}
}

// roleOf resolves the framework role of a selector's receiver, or ""
// when the receiver is not one of the rewritten imports.
func (r *rewriter) roleOf(sel *ast.SelectorExpr) string {
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return ""
	}
	return r.roles[ident.Name]
}

// findComponent picks the exported function to register: the first
// top-level non-method exported function whose single result is a node
// type from the element packages.
func (r *rewriter) findComponent(file *ast.File) *ast.FuncDecl {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !fn.Name.IsExported() {
			continue
		}
		if fn.Type.Results == nil || len(fn.Type.Results.List) != 1 {
			continue
		}
		if r.isNodeType(fn.Type.Results.List[0].Type) {
			return fn
		}
	}
	return nil
}

func (r *rewriter) isNodeType(t ast.Expr) bool {
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	sel, ok := t.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	switch r.roleOf(sel) {
	case roleEl:
		return sel.Sel.Name == "Node" || sel.Sel.Name == "Element"
	case roleJSX:
		return sel.Sel.Name == "Node"
	}
	return false
}

// rewrite is the post-order visitor. Children are already rewritten
// when a node is visited, so nested element constructors are in tuple
// form by the time their parent is folded.
func (r *rewriter) rewrite(c *astutil.Cursor) bool {
	if r.err != nil {
		return false
	}

	switch n := c.Node().(type) {
	case *ast.CallExpr:
		r.rewriteCall(c, n)
	case *ast.SelectorExpr:
		r.rewriteSelector(c, n)
	case *ast.StarExpr:
		// *el.Element and *jsx.Element result types collapse to the
		// bare node form.
		if sel, ok := n.X.(*ast.SelectorExpr); ok && sel.Sel.Name == "Element" {
			if role := r.roleOf(sel); role == roleEl || role == roleJSX {
				c.Replace(ast.NewIdent("any"))
			}
		}
	}
	return true
}

func (r *rewriter) rewriteCall(c *astutil.Cursor, call *ast.CallExpr) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	switch r.roleOf(sel) {
	case roleEl:
		r.rewriteElCall(c, call, sel.Sel.Name)
	case roleReactive:
		if mapped, ok := reactiveCalls[sel.Sel.Name]; ok {
			call.Fun = clientSel(mapped)
		}
		// Unknown reactive calls keep their import.
	case roleJSX:
		if sel.Sel.Name == "Raw" {
			call.Fun = clientSel("Raw")
			return
		}
		r.reject(call, "cannot use %s.%s in a web component", identName(sel.X), sel.Sel.Name)
	}
}

func (r *rewriter) rewriteElCall(c *astutil.Cursor, call *ast.CallExpr, name string) {
	switch {
	case elementTags[name] != "":
		c.Replace(r.buildElement(call, strLit(elementTags[name]), call.Args))

	case name == "New":
		if len(call.Args) == 0 {
			r.errorf(call, "el.New needs a tag argument")
			return
		}
		c.Replace(r.buildElement(call, call.Args[0], call.Args[1:]))

	case name == "Text":
		if len(call.Args) != 1 {
			r.errorf(call, "el.Text takes exactly one argument")
			return
		}
		c.Replace(call.Args[0])

	case name == "Classf", isAttrHelper(name):
		// Folded by the enclosing element constructor.
		if !r.insideElementCall(c) {
			r.errorf(call, "attribute helper el.%s outside an element constructor", name)
		}

	case helperCalls[name] != "":
		call.Fun = clientSel(helperCalls[name])

	default:
		r.reject(call, "cannot transpile el.%s", name)
	}
}

func isAttrHelper(name string) bool {
	if attrKeys[name] != "" || boolAttrKeys[name] != "" {
		return true
	}
	switch name {
	case "A", "On", "Data", "Aria":
		return true
	}
	return false
}

// insideElementCall reports whether the cursor's node is a direct
// argument of an element constructor still awaiting its own rewrite.
func (r *rewriter) insideElementCall(c *astutil.Cursor) bool {
	parent, ok := c.Parent().(*ast.CallExpr)
	if !ok {
		return false
	}
	sel, ok := parent.Fun.(*ast.SelectorExpr)
	if !ok || r.roleOf(sel) != roleEl {
		return false
	}
	return elementTags[sel.Sel.Name] != "" || sel.Sel.Name == "New"
}

// buildElement folds an el constructor call into the tuple form:
// attribute helper arguments become client.P entries in authored
// order, everything else becomes a child.
func (r *rewriter) buildElement(at ast.Node, tag ast.Expr, args []ast.Expr) ast.Expr {
	var entries []ast.Expr
	var children []ast.Expr

	for _, arg := range args {
		if entry, ok := r.attrEntry(arg); ok {
			if entry != nil {
				entries = append(entries, entry)
			}
			continue
		}
		children = append(children, arg)
	}

	var props ast.Expr = ast.NewIdent("nil")
	if len(entries) > 0 {
		props = &ast.CompositeLit{Type: clientSel("P"), Elts: entries}
	}

	return clientCall("N", append([]ast.Expr{tag, props}, children...)...)
}

// attrEntry converts an attribute helper call into a key/value map
// entry. Returns ok=false when the argument is not an attribute
// helper; a nil entry with ok=true means an error was recorded.
func (r *rewriter) attrEntry(arg ast.Expr) (ast.Expr, bool) {
	call, ok := arg.(*ast.CallExpr)
	if !ok {
		return nil, false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || r.roleOf(sel) != roleEl {
		return nil, false
	}

	name := sel.Sel.Name
	switch {
	case attrKeys[name] != "":
		if len(call.Args) != 1 {
			r.errorf(call, "el.%s takes exactly one argument", name)
			return nil, true
		}
		return kv(strLit(attrKeys[name]), call.Args[0]), true

	case boolAttrKeys[name] != "":
		if len(call.Args) != 0 {
			r.errorf(call, "el.%s takes no arguments", name)
			return nil, true
		}
		return kv(strLit(boolAttrKeys[name]), ast.NewIdent("true")), true

	case name == "Classf":
		return kv(strLit("class"), clientCall("Textf", call.Args...)), true

	case name == "A":
		if len(call.Args) != 2 {
			r.errorf(call, "el.A takes a key and a value")
			return nil, true
		}
		return kv(call.Args[0], call.Args[1]), true

	case name == "On":
		if len(call.Args) != 2 {
			r.errorf(call, "el.On takes an event name and a handler")
			return nil, true
		}
		return kv(prefixKey("on", call.Args[0]), call.Args[1]), true

	case name == "Data":
		if len(call.Args) != 2 {
			r.errorf(call, "el.Data takes a suffix and a value")
			return nil, true
		}
		return kv(prefixKey("data-", call.Args[0]), call.Args[1]), true

	case name == "Aria":
		if len(call.Args) != 2 {
			r.errorf(call, "el.Aria takes a suffix and a value")
			return nil, true
		}
		return kv(prefixKey("aria-", call.Args[0]), call.Args[1]), true
	}
	return nil, false
}

// rewriteSelector maps framework types onto their client counterparts.
// Call receivers are skipped here; rewriteCall owns those.
func (r *rewriter) rewriteSelector(c *astutil.Cursor, sel *ast.SelectorExpr) {
	if parent, ok := c.Parent().(*ast.CallExpr); ok && parent.Fun == sel {
		return
	}

	switch r.roleOf(sel) {
	case roleEl:
		switch sel.Sel.Name {
		case "Node":
			c.Replace(ast.NewIdent("any"))
		case "Props":
			c.Replace(clientSel("P"))
		case "Element":
			// Handled at the StarExpr level for *el.Element; a bare
			// reference has no client-side shape.
			if _, ok := c.Parent().(*ast.StarExpr); !ok {
				r.reject(sel, "el.Element has no client form, use el.Node")
			}
		default:
			r.reject(sel, "cannot transpile reference to el.%s", sel.Sel.Name)
		}
	case roleJSX:
		switch sel.Sel.Name {
		case "Node":
			c.Replace(ast.NewIdent("any"))
		case "Props":
			c.Replace(clientSel("P"))
		case "Raw":
			c.Replace(clientSel("RawHTML"))
		case "Element":
			if _, ok := c.Parent().(*ast.StarExpr); !ok {
				r.reject(sel, "jsx.Element has no client form, use jsx.Node")
			}
		default:
			r.reject(sel, "cannot use %s.%s in a web component", identName(sel.X), sel.Sel.Name)
		}
	}
}

// rewriteImports drops the rewritten framework imports and adds the
// client runtime. The reactive import survives only when a reference,
// such as an explicit signal type, remains.
func (r *rewriter) rewriteImports(file *ast.File) {
	for _, imp := range r.imports {
		if imp.role == roleReactive && identReferenced(file, imp.name) {
			continue
		}
		if imp.name == path.Base(imp.path) {
			astutil.DeleteImport(r.fset, file, imp.path)
		} else {
			astutil.DeleteNamedImport(r.fset, file, imp.name, imp.path)
		}
	}
	astutil.AddImport(r.fset, file, clientImport)
}

// identReferenced reports whether name is still used as a selector
// receiver anywhere in the file.
func identReferenced(file *ast.File, name string) bool {
	found := false
	ast.Inspect(file, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == name {
				found = true
				return false
			}
		}
		return !found
	})
	return found
}

// AST construction helpers.

func clientSel(name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{X: ast.NewIdent("client"), Sel: ast.NewIdent(name)}
}

func clientCall(name string, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Fun: clientSel(name), Args: args}
}

func strLit(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func kv(key, value ast.Expr) *ast.KeyValueExpr {
	return &ast.KeyValueExpr{Key: key, Value: value}
}

// prefixKey builds the map key for prefixed attributes: a literal when
// the suffix is a literal, a concatenation otherwise.
func prefixKey(prefix string, suffix ast.Expr) ast.Expr {
	if lit, ok := suffix.(*ast.BasicLit); ok && lit.Kind == token.STRING {
		if s, err := strconv.Unquote(lit.Value); err == nil {
			return strLit(prefix + s)
		}
	}
	return &ast.BinaryExpr{X: strLit(prefix), Op: token.ADD, Y: suffix}
}

func identName(e ast.Expr) string {
	if ident, ok := e.(*ast.Ident); ok {
		return ident.Name
	}
	return "?"
}
