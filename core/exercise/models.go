package exercise

import (
	"time"

	"github.com/trezcool/mazoezi/core"
)

// Exercise is an assignment prompt belonging to a subject. Creation date,
// subject and creator are fixed at creation; only title and description are
// editable afterwards.
type Exercise struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"titre"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"date_creation"` // UTC
	SubjectID   int       `json:"subject_id" db:"matiere_id"`
	CreatorID   int       `json:"creator_id" db:"createur_id"`
	SubjectName string    `json:"subject_name" db:"matiere_nom"` // joined in for display
}

// OwnedBy implements policy.Owned.
func (e Exercise) OwnedBy() int { return e.CreatorID }

// NewExercise contains information needed to create a new Exercise.
type NewExercise struct {
	Title       string `json:"title" validate:"required,max=254"`
	Description string `json:"description" validate:"required"`
	SubjectID   int    `json:"subject_id" validate:"required"`
	CreatorID   int    `json:"creator_id" validate:"required"`
}

func (ne *NewExercise) Validate() error {
	ne.Title = core.CleanString(ne.Title)
	ne.Description = core.CleanString(ne.Description)
	return core.Validate.Struct(ne)
}

// UpdateExercise defines the fields that may be modified after creation.
type UpdateExercise struct {
	Title       string `json:"title" validate:"required,max=254"`
	Description string `json:"description" validate:"required"`
}

func (ue *UpdateExercise) Validate() error {
	ue.Title = core.CleanString(ue.Title)
	ue.Description = core.CleanString(ue.Description)
	return core.Validate.Struct(ue)
}
