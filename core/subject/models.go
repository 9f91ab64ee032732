package subject

import (
	"context"

	"github.com/trezcool/mazoezi/core"
)

// Subject is a course/topic category grouping exercises.
type Subject struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"nom"`
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Name string `json:"name" validate:"required,max=254"`
}

// Validate cleans the name and enforces the caller-side uniqueness precheck:
// creation is rejected when a subject with the exact same name exists.
func (ns *NewSubject) Validate(ctx context.Context, svc *Service) error {
	ns.Name = core.CleanString(ns.Name)

	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	exists, err := svc.Exists(ctx, ns.Name)
	if err != nil {
		return err
	}
	if exists {
		return core.NewValidationError(ErrNameTaken, core.FieldError{Field: "name", Error: ErrNameTaken.Error()})
	}
	return nil
}
