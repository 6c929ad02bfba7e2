package project

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string // empty means valid
	}{
		{"empty", "", MsgNameTooShort},
		{"two chars", "ab", MsgNameTooShort},
		{"min length", "abc", ""},
		{"max length", strings.Repeat("a", 17), ""},
		{"too long", strings.Repeat("a", 18), MsgNameTooLong},
		{"any characters allowed", "My Project! 🚀", ""},
		{"spaces allowed", "a b c", ""},
		{"multibyte at max length", strings.Repeat("é", 17), ""},
		{"multibyte over max length", strings.Repeat("é", 18), MsgNameTooLong},
		{"multibyte under min length", "éé", MsgNameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)

			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ValidateName(%q) = %v, want nil", tt.input, err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateName(%q) = nil, want %q", tt.input, tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.input, err.Error(), tt.wantMsg)
			}

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("ValidateName(%q) returned %T, want *FieldError", tt.input, err)
			}
			if fieldErr.Field != "name" {
				t.Errorf("Field = %q, want \"name\"", fieldErr.Field)
			}
		})
	}
}

func TestValidateSubdomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", MsgSubdomainTooShort},
		{"two chars", "ab", MsgSubdomainTooShort},
		{"min length", "abc", ""},
		{"digits only", "123", ""},
		{"mixed case alphanumeric", "Acme42", ""},
		{"hyphen rejected", "my-app", MsgSubdomainPattern},
		{"space rejected", "my app", MsgSubdomainPattern},
		{"unicode rejected", "café1", MsgSubdomainPattern},
		{"underscore rejected", "my_app", MsgSubdomainPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateSubdomain(tt.input)

			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ValidateSubdomain(%q) = %v, want nil", tt.input, err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateSubdomain(%q) = nil, want %q", tt.input, tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("ValidateSubdomain(%q) = %q, want %q", tt.input, err.Error(), tt.wantMsg)
			}
		})
	}
}

// TestValidateSubdomain_LengthBeforePattern pins the declared check order:
// when an input fails both rules, the length message wins.
func TestValidateSubdomain_LengthBeforePattern(t *testing.T) {
	t.Parallel()

	err := ValidateSubdomain("a!")
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if err.Error() != MsgSubdomainTooShort {
		t.Errorf("Got %q, want length message %q", err.Error(), MsgSubdomainTooShort)
	}

	// Two multibyte characters fail both rules; the length message must
	// still win, which requires counting characters rather than bytes.
	err = ValidateSubdomain("éé")
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if err.Error() != MsgSubdomainTooShort {
		t.Errorf("Got %q, want length message %q", err.Error(), MsgSubdomainTooShort)
	}
}

// TestValidateName_CountsCharacters pins that the length bounds count
// characters: a 10-character multibyte name is 20 bytes but still valid.
func TestValidateName_CountsCharacters(t *testing.T) {
	t.Parallel()

	if err := ValidateName(strings.Repeat("é", 10)); err != nil {
		t.Errorf("ValidateName(10 multibyte chars) = %v, want nil", err)
	}
}

func TestValidateCreateProject_NameCheckedFirst(t *testing.T) {
	t.Parallel()

	err := ValidateCreateProject(CreateProjectRequest{Name: "ab", Subdomain: "x"})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Got %T, want *FieldError", err)
	}
	if fieldErr.Field != "name" {
		t.Errorf("Field = %q, want \"name\" (name check runs first)", fieldErr.Field)
	}
}
