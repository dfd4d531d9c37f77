package practicum

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCheckResponseValid(t *testing.T) {
	t.Parallel()
	raw := map[string]any{
		"current_date": json.Number("1700000100"),
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "approved"},
		},
	}

	homeworks, cursor, err := CheckResponse(raw)
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if cursor != 1700000100 {
		t.Fatalf("cursor = %d, want 1700000100", cursor)
	}
	if len(homeworks) != 1 || homeworks[0]["homework_name"] != "hw1" {
		t.Fatalf("unexpected homeworks: %v", homeworks)
	}
}

func TestCheckResponseEmptyList(t *testing.T) {
	t.Parallel()
	homeworks, cursor, err := CheckResponse(map[string]any{
		"current_date": json.Number("42"),
		"homeworks":    []any{},
	})
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if len(homeworks) != 0 {
		t.Fatalf("expected empty list, got %v", homeworks)
	}
	if cursor != 42 {
		t.Fatalf("cursor = %d, want 42", cursor)
	}
}

func TestCheckResponseMalformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "nil response", raw: nil},
		{name: "homeworks missing", raw: map[string]any{"current_date": json.Number("1")}},
		{name: "homeworks is string", raw: map[string]any{"current_date": json.Number("1"), "homeworks": "nope"}},
		{name: "homeworks is number", raw: map[string]any{"current_date": json.Number("1"), "homeworks": json.Number("7")}},
		{name: "current_date missing", raw: map[string]any{"homeworks": []any{}}},
		{name: "current_date not a number", raw: map[string]any{"homeworks": []any{}, "current_date": "soon"}},
		{name: "current_date fractional", raw: map[string]any{"homeworks": []any{}, "current_date": 17.5}},
		{name: "homework entry not an object", raw: map[string]any{"homeworks": []any{"hw"}, "current_date": json.Number("1")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CheckResponse(tt.raw)
			var me *MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("expected MalformedError, got %v", err)
			}
		})
	}
}

func TestCheckResponseAcceptsFloat64Cursor(t *testing.T) {
	t.Parallel()
	// A decoder without UseNumber hands integral values over as float64.
	_, cursor, err := CheckResponse(map[string]any{
		"homeworks":    []any{},
		"current_date": float64(1700000100),
	})
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if cursor != 1700000100 {
		t.Fatalf("cursor = %d, want 1700000100", cursor)
	}
}
