package assets

import "github.com/veltaweb/velta/pkg/jsx"

// Resolver turns a source asset name into the URL path a page should
// reference.
type Resolver interface {
	Asset(source string) string
}

type contextKey struct{}

// With attaches a resolver to a render context so components can
// reference fingerprinted assets.
func With(ctx *jsx.Context, r Resolver) {
	ctx.SetValue(contextKey{}, r)
}

// From returns the resolver attached to the render context, or a
// passthrough over "/" when none is attached, so asset references in
// components degrade to plain paths instead of failing.
func From(ctx *jsx.Context) Resolver {
	if r, ok := ctx.Value(contextKey{}).(Resolver); ok {
		return r
	}
	return &passthrough{prefix: "/"}
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves through a manifest, prepending the static
// serving prefix: Asset("app.css") -> "/static/app.3f8a91c2.css".
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver returns paths unchanged apart from the
// prefix. Dev mode uses this so edits show up without a rebuild.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
