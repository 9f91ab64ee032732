package solution

import (
	"time"

	"github.com/trezcool/mazoezi/core"
)

// Solution is a submitted answer to an exercise. Unlike exercises, the
// creation date moves forward on every edit.
type Solution struct {
	ID         int       `json:"id" db:"id"`
	Content    string    `json:"content" db:"contenu"`
	CreatedAt  time.Time `json:"created_at" db:"date_creation"` // UTC; refreshed on update
	ExerciseID int       `json:"exercise_id" db:"exercice_id"`
	AuthorID   int       `json:"author_id" db:"auteur_id"`
	AuthorName string    `json:"author_name" db:"-"` // resolved per row; "User <id>" when the author is gone
}

// OwnedBy implements policy.Owned.
func (s Solution) OwnedBy() int { return s.AuthorID }

// NewSolution contains information needed to submit a new Solution.
type NewSolution struct {
	Content    string `json:"content" validate:"required"`
	ExerciseID int    `json:"exercise_id" validate:"required"`
	AuthorID   int    `json:"author_id" validate:"required"`
}

func (ns *NewSolution) Validate() error {
	ns.Content = core.CleanString(ns.Content)
	return core.Validate.Struct(ns)
}

// UpdateSolution defines the fields that may be modified after submission.
type UpdateSolution struct {
	Content string `json:"content" validate:"required"`
}

func (us *UpdateSolution) Validate() error {
	us.Content = core.CleanString(us.Content)
	return core.Validate.Struct(us)
}
