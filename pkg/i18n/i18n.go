// Package i18n resolves the request locale and carries translated
// messages through the render context. The render core never
// interpolates messages itself; components call T at the boundary.
package i18n

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/veltaweb/velta/pkg/jsx"
)

// T translates a message key, interpolating printf-style arguments.
type T func(key string, args ...any) string

// I18n is the per-request localization state attached to the render
// context.
type I18n struct {
	// Locale is the resolved locale for this request.
	Locale string

	// DefaultLocale is the bundle's fallback locale.
	DefaultLocale string

	// Locales lists every locale the bundle supports.
	Locales []string

	// Pages maps route patterns to their localized path for the
	// resolved locale, used when emitting links.
	Pages map[string]string

	// T translates a key for the resolved locale.
	T T
}

// Bundle holds the static localization data a site ships with.
type Bundle struct {
	// DefaultLocale is used when no supported locale matches.
	DefaultLocale string

	// Locales lists the supported locales. The default must appear.
	Locales []string

	// Messages maps locale -> key -> message template.
	Messages map[string]map[string]string

	// Pages maps locale -> route pattern -> localized path.
	Pages map[string]map[string]string
}

// FromRequest resolves the request locale and returns the bound I18n.
// Resolution order: path prefix (/fr/...), Accept-Language, default.
func (b *Bundle) FromRequest(r *http.Request) *I18n {
	locale := b.DefaultLocale
	if l, ok := b.localeFromPath(r.URL.Path); ok {
		locale = l
	} else if l, ok := b.matchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		locale = l
	}
	return b.For(locale)
}

// For returns the I18n bound to a specific locale. Unknown locales
// fall back to the default.
func (b *Bundle) For(locale string) *I18n {
	if !b.supports(locale) {
		locale = b.DefaultLocale
	}
	return &I18n{
		Locale:        locale,
		DefaultLocale: b.DefaultLocale,
		Locales:       b.Locales,
		Pages:         b.Pages[locale],
		T:             b.translator(locale),
	}
}

// StripLocalePrefix removes a leading locale segment from a path so
// the router matches the canonical pattern.
func (b *Bundle) StripLocalePrefix(path string) string {
	if l, ok := b.localeFromPath(path); ok {
		trimmed := strings.TrimPrefix(path, "/"+l)
		if trimmed == "" {
			return "/"
		}
		return trimmed
	}
	return path
}

func (b *Bundle) supports(locale string) bool {
	for _, l := range b.Locales {
		if l == locale {
			return true
		}
	}
	return false
}

func (b *Bundle) localeFromPath(path string) (string, bool) {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	if seg != "" && b.supports(seg) {
		return seg, true
	}
	return "", false
}

// matchAcceptLanguage picks the highest-quality supported language
// from an Accept-Language header.
func (b *Bundle) matchAcceptLanguage(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	type candidate struct {
		lang string
		q    float64
		pos  int
	}
	var cands []candidate

	for pos, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lang := part
		q := 1.0
		if i := strings.IndexByte(part, ';'); i >= 0 {
			lang = strings.TrimSpace(part[:i])
			rest := strings.TrimSpace(part[i+1:])
			if strings.HasPrefix(rest, "q=") {
				if parsed, err := strconv.ParseFloat(rest[2:], 64); err == nil {
					q = parsed
				}
			}
		}
		// en-US matches a plain en bundle.
		if i := strings.IndexByte(lang, '-'); i >= 0 {
			lang = lang[:i]
		}
		cands = append(cands, candidate{lang: strings.ToLower(lang), q: q, pos: pos})
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].q > cands[j].q })
	for _, c := range cands {
		if c.q > 0 && b.supports(c.lang) {
			return c.lang, true
		}
	}
	return "", false
}

// translator binds T to a locale's message table with fallback to the
// default locale, then to the key itself.
func (b *Bundle) translator(locale string) T {
	return func(key string, args ...any) string {
		msg, ok := b.Messages[locale][key]
		if !ok {
			msg, ok = b.Messages[b.DefaultLocale][key]
		}
		if !ok {
			return key
		}
		if len(args) == 0 {
			return msg
		}
		return fmt.Sprintf(msg, args...)
	}
}

// context attachment

type contextKey struct{}

// With attaches the I18n to a render context.
func With(ctx *jsx.Context, i *I18n) {
	ctx.SetValue(contextKey{}, i)
}

// From extracts the I18n from a render context. A context without one
// yields ok=false; components must not assume localization exists.
func From(ctx *jsx.Context) (*I18n, bool) {
	v := ctx.Value(contextKey{})
	if v == nil {
		return nil, false
	}
	i, ok := v.(*I18n)
	return i, ok
}
