package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/veltaweb/velta/pkg/jsx"
)

func testBundle() *Bundle {
	return &Bundle{
		DefaultLocale: "en",
		Locales:       []string{"en", "fr", "de"},
		Messages: map[string]map[string]string{
			"en": {"greeting": "Hello %s", "title": "Home"},
			"fr": {"greeting": "Bonjour %s"},
		},
		Pages: map[string]map[string]string{
			"en": {"/about": "/about"},
			"fr": {"/about": "/fr/a-propos"},
		},
	}
}

func TestFromRequestPathPrefixWins(t *testing.T) {
	b := testBundle()
	r := httptest.NewRequest("GET", "/fr/a-propos", nil)
	r.Header.Set("Accept-Language", "de")

	i := b.FromRequest(r)
	if i.Locale != "fr" {
		t.Errorf("got locale %q, want fr", i.Locale)
	}
}

func TestFromRequestAcceptLanguage(t *testing.T) {
	b := testBundle()

	cases := map[string]string{
		"fr":                     "fr",
		"fr-CA":                  "fr",
		"es, de;q=0.8, fr;q=0.9": "fr",
		"es, it":                 "en",
		"de;q=0, fr;q=0.1":       "fr",
		"":                       "en",
		"fr;q=0.2, de;q=0.9, es": "de",
	}
	for header, want := range cases {
		r := httptest.NewRequest("GET", "/about", nil)
		if header != "" {
			r.Header.Set("Accept-Language", header)
		}
		if got := b.FromRequest(r).Locale; got != want {
			t.Errorf("Accept-Language %q: got %q, want %q", header, got, want)
		}
	}
}

func TestFromRequestDefault(t *testing.T) {
	b := testBundle()
	r := httptest.NewRequest("GET", "/about", nil)
	if got := b.FromRequest(r).Locale; got != "en" {
		t.Errorf("got %q, want default en", got)
	}
}

func TestTranslatorFallbacks(t *testing.T) {
	b := testBundle()

	fr := b.For("fr")
	if got := fr.T("greeting", "Marie"); got != "Bonjour Marie" {
		t.Errorf("got %q", got)
	}
	// Key missing in fr falls back to the default locale.
	if got := fr.T("title"); got != "Home" {
		t.Errorf("got %q", got)
	}
	// Key missing everywhere comes back verbatim.
	if got := fr.T("missing.key"); got != "missing.key" {
		t.Errorf("got %q", got)
	}
}

func TestForUnknownLocaleFallsBack(t *testing.T) {
	b := testBundle()
	i := b.For("xx")
	if i.Locale != "en" {
		t.Errorf("got %q", i.Locale)
	}
}

func TestLocalizedPages(t *testing.T) {
	b := testBundle()
	i := b.For("fr")
	if i.Pages["/about"] != "/fr/a-propos" {
		t.Errorf("got %q", i.Pages["/about"])
	}
}

func TestStripLocalePrefix(t *testing.T) {
	b := testBundle()

	cases := map[string]string{
		"/fr/a-propos": "/a-propos",
		"/fr":          "/",
		"/about":       "/about",
		"/frx/about":   "/frx/about",
	}
	for in, want := range cases {
		if got := b.StripLocalePrefix(in); got != want {
			t.Errorf("StripLocalePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContextAttachment(t *testing.T) {
	b := testBundle()
	ctx := jsx.NewContext(httptest.NewRequest("GET", "/", nil))

	if _, ok := From(ctx); ok {
		t.Fatal("fresh context must not carry localization")
	}

	With(ctx, b.For("fr"))
	i, ok := From(ctx)
	if !ok || i.Locale != "fr" {
		t.Fatalf("got %v, %v", i, ok)
	}
}
