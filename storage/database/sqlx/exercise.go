package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/exercise"
)

const exerciseQuery = `
SELECT e.id, e.titre, e.description, e.date_creation, e.matiere_id, e.createur_id, m.nom AS matiere_nom
FROM exercice e
JOIN matiere m ON e.matiere_id = m.id`

type exerciseRepository struct {
	db *sqlx.DB
}

var _ exercise.Repository = (*exerciseRepository)(nil) // interface compliance check

func NewExerciseRepository(db *sqlx.DB) *exerciseRepository {
	return &exerciseRepository{db: db}
}

func (repo exerciseRepository) queryExercises(ctx context.Context, query string, args ...interface{}) ([]exercise.Exercise, error) {
	exs := make([]exercise.Exercise, 0)
	if err := repo.db.SelectContext(ctx, &exs, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying exercises")
	}
	return exs, nil
}

func (repo exerciseRepository) QueryAllExercises(ctx context.Context) ([]exercise.Exercise, error) {
	return repo.queryExercises(ctx, exerciseQuery)
}

func (repo exerciseRepository) QueryExercisesBySubject(ctx context.Context, subjectID int) ([]exercise.Exercise, error) {
	return repo.queryExercises(ctx, exerciseQuery+` WHERE e.matiere_id = $1`, subjectID)
}

func (repo exerciseRepository) QueryExercisesByCreator(ctx context.Context, creatorID int) ([]exercise.Exercise, error) {
	return repo.queryExercises(ctx, exerciseQuery+` WHERE e.createur_id = $1`, creatorID)
}

func (repo exerciseRepository) GetExerciseByID(ctx context.Context, id int) (exercise.Exercise, error) {
	var ex exercise.Exercise
	if err := repo.db.GetContext(ctx, &ex, exerciseQuery+` WHERE e.id = $1`, id); err != nil {
		return exercise.Exercise{}, trapNoRowsErr(err, exercise.ErrNotFound, "getting exercise")
	}
	return ex, nil
}

func (repo exerciseRepository) CreateExercise(ctx context.Context, ex exercise.Exercise) (exercise.Exercise, error) {
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO exercice (titre, description, date_creation, matiere_id, createur_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		ex.Title, ex.Description, ex.CreatedAt, ex.SubjectID, ex.CreatorID,
	).Scan(&ex.ID)
	if err != nil {
		return exercise.Exercise{}, errors.Wrap(err, "inserting exercise")
	}
	// re-read for the joined subject name
	return repo.GetExerciseByID(ctx, ex.ID)
}

// UpdateExercise only touches the mutable columns; creation date, subject and
// creator are fixed at creation.
func (repo exerciseRepository) UpdateExercise(ctx context.Context, ex exercise.Exercise) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE exercice SET titre = $1, description = $2 WHERE id = $3`,
		ex.Title, ex.Description, ex.ID,
	)
	if err != nil {
		return errors.Wrap(err, "updating exercise")
	}
	return rowsAffected(res, exercise.ErrNotFound, "updating exercise")
}

// deleteExerciseChildren removes everything the exercise owns. Mockable.
var deleteExerciseChildren = func(ctx context.Context, tx *sqlx.Tx, exerciseID int) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM message WHERE exercice_id = $1`, exerciseID); err != nil {
		return errors.Wrap(err, "deleting exercise messages")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM solution WHERE exercice_id = $1`, exerciseID); err != nil {
		return errors.Wrap(err, "deleting exercise solutions")
	}
	return nil
}

// DeleteExercise removes the exercise's messages and solutions, then the
// exercise row, in one transaction holding its connection for the duration.
// Any failure rolls the whole deletion back before returning; a partial
// delete can never be observed.
func (repo exerciseRepository) DeleteExercise(ctx context.Context, id int) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning exercise deletion")
	}

	if err = deleteExerciseChildren(ctx, tx, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM exercice WHERE id = $1`, id)
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "deleting exercise")
	}
	if err = rowsAffected(res, exercise.ErrNotFound, "deleting exercise"); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "committing exercise deletion")
	}
	return nil
}
