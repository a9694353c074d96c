package validate

import (
	"testing"

	perr "github.com/vaibhavgarg230/trustlens-sub000/internal/platform/errors"
)

type inner struct {
	Count int `json:"count" validate:"gte=0"`
}

type payload struct {
	ID    string `json:"id" validate:"required"`
	Score int    `json:"score" validate:"min=0,max=100"`
	Inner *inner `json:"inner,omitempty"`
}

func TestStruct_OK(t *testing.T) {
	if err := Struct(payload{ID: "a", Score: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_RequiredUsesJSONName(t *testing.T) {
	err := Struct(payload{Score: 1})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation code, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "id" {
		t.Fatalf("field = %q, want id", e.Field())
	}
	if e.Error() != "id is a required field" {
		t.Fatalf("message = %q", e.Error())
	}
}

func TestStruct_ShortMinMax(t *testing.T) {
	err := Struct(payload{ID: "a", Score: 101})
	if err == nil || err.Error() != "score must be at most 100" {
		t.Fatalf("max message = %v", err)
	}
	err = Struct(payload{ID: "a", Score: -1})
	if err == nil || err.Error() != "score must be at least 0" {
		t.Fatalf("min message = %v", err)
	}
}

func TestStruct_NestedFieldPath(t *testing.T) {
	err := Struct(payload{ID: "a", Inner: &inner{Count: -3}})
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("expected perr error, got %v", err)
	}
	if e.Field() != "inner.count" {
		t.Fatalf("field = %q, want inner.count", e.Field())
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	if err := Struct(42); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}
