package errors

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeValidation, 2},
		{ErrorCodeInvalidArgument, 2},
		{ErrorCodeTooManyRequests, 3},
		{ErrorCodeJSON, 1},
		{ErrorCodeIO, 1},
		{ErrorCodeUnknown, 1},
		{9999, 1},
	}
	for _, c := range cases {
		if got := ExitCode(c.code); got != c.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if ErrorCodeValidation.String() != "validation" {
		t.Fatalf("unexpected name %q", ErrorCodeValidation.String())
	}
	if ErrorCode(9999).String() != "unknown" {
		t.Fatalf("unknown codes should render as unknown")
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeIO, "read failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if e3.Error() != "read failed: root" {
		t.Fatalf("Wrap render = %q", e3.Error())
	}
	e4 := Wrapf(src, ErrorCodeUnavailable, "batch %s", "b1")
	if !IsCode(e4, ErrorCodeUnavailable) {
		t.Fatalf("Wrapf code mismatch")
	}
	if WrapIf(nil, ErrorCodeIO, "x") != nil {
		t.Fatalf("WrapIf(nil) should be nil")
	}

	// foreign errors map to Unknown
	if CodeOf(fmt.Errorf("plain")) != ErrorCodeUnknown {
		t.Fatalf("foreign error should be Unknown")
	}
}

func TestMutatorsAreCopyOnWrite(t *testing.T) {
	base := Validationf("text is required")
	withField := WithField(base, "text")
	withOp := WithOp(withField, "analyze")

	b, _ := As(base)
	f, _ := As(withField)
	o, _ := As(withOp)
	if b.Field() != "" {
		t.Fatalf("base mutated: field=%q", b.Field())
	}
	if f.Field() != "text" || o.Field() != "text" || o.Op() != "analyze" {
		t.Fatalf("mutators lost data: %+v %+v", f, o)
	}

	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain || WithOp(plain, "y") != plain {
		t.Fatalf("mutators should pass foreign errors through")
	}
}

func TestWire(t *testing.T) {
	if (WireFrom(nil) != Wire{}) {
		t.Fatalf("nil error should produce zero wire")
	}
	w := WireFrom(WithField(TooManyf("batch of %d exceeds %d", 10, 5), "submissions"))
	if w.Code != ErrorCodeTooManyRequests || w.Kind != "too_many_requests" || w.Field != "submissions" {
		t.Fatalf("unexpected wire %+v", w)
	}
	if w.Message != "batch of 10 exceeds 5" {
		t.Fatalf("unexpected message %q", w.Message)
	}
	fw := WireFrom(stderrs.New("boom"))
	if fw.Code != ErrorCodeUnknown || fw.Message != "boom" {
		t.Fatalf("unexpected foreign wire %+v", fw)
	}
}
