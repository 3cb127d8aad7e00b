package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	e := New("V100")
	if e.Category != CategoryConfig {
		t.Errorf("got category %q", e.Category)
	}
	if !strings.Contains(e.Error(), "V100") {
		t.Errorf("code missing from message: %q", e.Error())
	}
	if e.Suggestion == "" {
		t.Error("V100 should carry a suggestion")
	}
}

func TestNewUnknownCode(t *testing.T) {
	e := New("V999")
	if e.Code != "V999" || e.Message != "unknown error" {
		t.Errorf("got %+v", e)
	}
}

func TestWrapSupportsErrorsIs(t *testing.T) {
	cause := stderrors.New("boom")
	e := New("V201").Wrap(cause)
	if !stderrors.Is(e, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestFromErrorPassthrough(t *testing.T) {
	orig := New("V300")
	if got := FromError(orig, "V301"); got != orig {
		t.Error("coded errors must pass through unchanged")
	}
	if got := FromError(nil, "V301"); got != nil {
		t.Error("nil stays nil")
	}
	wrapped := FromError(stderrors.New("x"), "V301")
	if wrapped.Code != "V301" {
		t.Errorf("got %q", wrapped.Code)
	}
}

func TestFormatSections(t *testing.T) {
	e := New("V204").WithDetail("access denied\nbucket: b").Wrap(stderrors.New("403"))
	out := e.Format()

	for _, want := range []string{"V204", "access denied", "cause: 403", "hint:"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted output missing %q:\n%s", want, out)
		}
	}
}

func TestNewfUncoded(t *testing.T) {
	e := Newf(CategoryCLI, "bad flag %q", "-x")
	if e.Code != "" || !strings.Contains(e.Error(), "-x") {
		t.Errorf("got %+v", e)
	}
}
