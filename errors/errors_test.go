package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseMap,
				Kind:       KindUnmappedType,
				Path:       []string{"Counter", "value"},
				BridgeType: "u128",
				CType:      "uint128_t",
				Detail:     "no C representation registered",
			},
			contains: []string{"[map]", "unmapped_type", "Counter.value", "u128", "uint128_t", "no C representation"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEmit,
				Kind:  KindInvalidData,
			},
			contains: []string{"[emit]", "invalid_data"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "decode bridge file",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "decode bridge file", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseMap,
		Kind:  KindUnmappedType,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseMap, Kind: KindUnmappedType}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseLoad, Kind: KindUnmappedType}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseMap, Kind: KindInvalidData}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseMap, Kind: KindUnmappedType}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseMap, KindUnmappedType).
		Path("Point", "x").
		BridgeType("u128").
		CType("uint128_t").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "scalar", "u128").
		Build()

	if err.Phase != PhaseMap {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseMap)
	}
	if err.Kind != KindUnmappedType {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnmappedType)
	}
	if len(err.Path) != 2 || err.Path[0] != "Point" || err.Path[1] != "x" {
		t.Errorf("Path = %v, want [Point x]", err.Path)
	}
	if err.BridgeType != "u128" {
		t.Errorf("BridgeType = %v, want 'u128'", err.BridgeType)
	}
	if err.CType != "uint128_t" {
		t.Errorf("CType = %v, want 'uint128_t'", err.CType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected scalar, got u128" {
		t.Errorf("Detail = %v, want 'expected scalar, got u128'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnmappedType", func(t *testing.T) {
		err := UnmappedType([]string{"Point", "x"}, "u128")
		if err.Phase != PhaseMap {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseMap)
		}
		if err.Kind != KindUnmappedType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnmappedType)
		}
		if err.BridgeType != "u128" {
			t.Errorf("BridgeType = %v, want 'u128'", err.BridgeType)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLoad, "type", "Widget")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !containsSubstring(err.Detail, "Widget") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := Duplicate(PhaseLoad, "entity", "Counter")
		if err.Kind != KindDuplicate {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDuplicate)
		}
		if !containsSubstring(err.Detail, "Counter") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseEmit, []string{"fn"}, "bad declaration")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseLoad, "empty module name")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Load", func(t *testing.T) {
		cause := errors.New("toml: bad syntax")
		err := Load("decode bridge file", cause)
		if err.Phase != PhaseLoad {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseLoad)
		}
		if !errors.Is(err.Unwrap(), cause) {
			t.Error("cause not preserved")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseAssemble, KindInvalidData, cause, "assemble header")
		if err.Phase != PhaseAssemble {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseAssemble)
		}
		if !errors.Is(err, &Error{Phase: PhaseAssemble, Kind: KindInvalidData}) {
			t.Error("errors.Is should match wrapped error")
		}
	})
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
