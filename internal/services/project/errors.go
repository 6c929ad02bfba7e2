package project

import (
	"errors"
	"strings"

	"github.com/teolivas/tablero/internal/models"
)

// FieldError is a validation message attached to a specific input field.
// The TUI renders it adjacent to that input instead of as a toast.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// legacyConflictText is the wording older store backends used for a
// subdomain uniqueness violation. Kept only as a classification fallback
// for errors that arrive as bare strings.
const legacyConflictText = "Unique constraint failed on the fields: (`subdomain`)"

// ErrorKind is the outcome taxonomy for a failed create-project call.
type ErrorKind int

const (
	// KindConflict is a subdomain uniqueness violation. Recoverable:
	// the user can correct the subdomain, so the form stays open.
	KindConflict ErrorKind = iota

	// KindField is any other field-shaped error carrying a message for a
	// specific input. Also recoverable.
	KindField

	// KindFailure is everything else (store unavailable, driver errors,
	// cancelled context). Terminal for the interaction.
	KindFailure
)

// Classify maps a create-project error onto the ErrorKind taxonomy.
// Classification is structural (errors.Is / errors.As on typed errors);
// the legacy wording check runs last. For KindField the returned FieldError
// carries the field and message; for KindConflict callers should use the
// fixed MsgSubdomainTaken message.
func Classify(err error) (ErrorKind, *FieldError) {
	if errors.Is(err, models.ErrSubdomainTaken) {
		return KindConflict, nil
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return KindField, fieldErr
	}

	if strings.Contains(err.Error(), legacyConflictText) {
		return KindConflict, nil
	}

	return KindFailure, nil
}
