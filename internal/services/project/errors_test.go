package project

import (
	"errors"
	"fmt"
	"testing"

	"github.com/teolivas/tablero/internal/models"
)

func TestClassify_Conflict(t *testing.T) {
	t.Parallel()

	// The service wraps repository errors, so Classify must see through
	// the wrapping.
	err := fmt.Errorf("failed to create project: %w", models.ErrSubdomainTaken)

	kind, fieldErr := Classify(err)
	if kind != KindConflict {
		t.Errorf("Kind = %v, want KindConflict", kind)
	}
	if fieldErr != nil {
		t.Errorf("FieldError = %v, want nil", fieldErr)
	}
}

func TestClassify_FieldError(t *testing.T) {
	t.Parallel()

	inner := &FieldError{Field: "subdomain", Message: "Network unreachable"}
	err := fmt.Errorf("failed to create project: %w", inner)

	kind, fieldErr := Classify(err)
	if kind != KindField {
		t.Fatalf("Kind = %v, want KindField", kind)
	}
	if fieldErr == nil {
		t.Fatal("Expected a FieldError")
	}
	if fieldErr.Field != "subdomain" {
		t.Errorf("Field = %q, want \"subdomain\"", fieldErr.Field)
	}
	// The message must come through verbatim.
	if fieldErr.Message != "Network unreachable" {
		t.Errorf("Message = %q, want \"Network unreachable\"", fieldErr.Message)
	}
}

// TestClassify_LegacyConflictText ensures the wording fallback still catches
// conflicts that arrive as bare strings from older store backends.
func TestClassify_LegacyConflictText(t *testing.T) {
	t.Parallel()

	err := errors.New("Invalid `prisma.project.create()` invocation: Unique constraint failed on the fields: (`subdomain`)")

	kind, _ := Classify(err)
	if kind != KindConflict {
		t.Errorf("Kind = %v, want KindConflict", kind)
	}
}

func TestClassify_UnknownError(t *testing.T) {
	t.Parallel()

	kind, fieldErr := Classify(errors.New("database is locked"))
	if kind != KindFailure {
		t.Errorf("Kind = %v, want KindFailure", kind)
	}
	if fieldErr != nil {
		t.Errorf("FieldError = %v, want nil", fieldErr)
	}
}

// TestClassify_StructuralBeforeWording pins the classification order: a typed
// FieldError wins even if its message happens to contain the legacy wording.
func TestClassify_StructuralBeforeWording(t *testing.T) {
	t.Parallel()

	inner := &FieldError{Field: "name", Message: legacyConflictText}

	kind, fieldErr := Classify(inner)
	if kind != KindField {
		t.Fatalf("Kind = %v, want KindField", kind)
	}
	if fieldErr.Field != "name" {
		t.Errorf("Field = %q, want \"name\"", fieldErr.Field)
	}
}
