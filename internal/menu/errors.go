package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/menu/internal/model"
)

// Stable codes for errors surfaced by the menu core.
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodePartialImport = "PARTIAL_IMPORT"
)

// Reasons attached to an InvalidInputError.
const (
	ReasonMissing       = "is required"
	ReasonUnknownCourse = "must be Starter, Main or Dessert"
	ReasonInvalidPrice  = "must be a number greater than zero"
	ReasonDuplicateID   = "duplicates another dish"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrPartialImport = errors.New("partial import")
)

// InvalidInputError names the first constraint a draft or dish failed.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func (e *InvalidInputError) Code() string { return ErrCodeInvalidInput }

// Missing reports whether the error is about an empty field.
func (e *InvalidInputError) Missing() bool { return e.Reason == ReasonMissing }

// RejectedDish is a snapshot entry that did not survive Replace.
type RejectedDish struct {
	Index  int
	Dish   model.Dish
	Reason error
}

// PartialImportError lists the snapshot entries Replace refused.
// RejectedAll is set when the policy discarded the whole snapshot.
type PartialImportError struct {
	Rejected    []RejectedDish
	Accepted    int
	RejectedAll bool
}

func (e *PartialImportError) Error() string {
	parts := make([]string, 0, len(e.Rejected))
	for _, r := range e.Rejected {
		label := r.Dish.Name
		if label == "" {
			label = r.Dish.ID
		}
		parts = append(parts, fmt.Sprintf("#%d %q: %v", r.Index, label, r.Reason))
	}
	if e.RejectedAll {
		return fmt.Sprintf("snapshot rejected, %d invalid dish(es): %s", len(e.Rejected), strings.Join(parts, "; "))
	}
	return fmt.Sprintf("dropped %d invalid dish(es), kept %d: %s", len(e.Rejected), e.Accepted, strings.Join(parts, "; "))
}

func (e *PartialImportError) Is(target error) bool { return target == ErrPartialImport }

func (e *PartialImportError) Code() string { return ErrCodePartialImport }
