package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/solution"
)

const solutionQuery = `
SELECT s.id, s.contenu, s.date_creation, s.exercice_id, s.auteur_id
FROM solution s`

type solutionRepository struct {
	db *sqlx.DB
}

var _ solution.Repository = (*solutionRepository)(nil) // interface compliance check

func NewSolutionRepository(db *sqlx.DB) *solutionRepository {
	return &solutionRepository{db: db}
}

func (repo solutionRepository) querySolutions(ctx context.Context, query string, args ...interface{}) ([]solution.Solution, error) {
	sols := make([]solution.Solution, 0)
	if err := repo.db.SelectContext(ctx, &sols, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying solutions")
	}
	// secondary per-row lookup; a dangling author degrades to a placeholder
	// label instead of aborting the listing
	for i := range sols {
		sols[i].AuthorName = authorDisplayName(ctx, repo.db, sols[i].AuthorID)
	}
	return sols, nil
}

func (repo solutionRepository) QuerySolutionsByExercise(ctx context.Context, exerciseID int) ([]solution.Solution, error) {
	return repo.querySolutions(ctx, solutionQuery+` WHERE s.exercice_id = $1`, exerciseID)
}

// QuerySolutionsByExerciseCreator joins through the owning exercise: it
// filters on the exercise's creator, not the solution's author.
func (repo solutionRepository) QuerySolutionsByExerciseCreator(ctx context.Context, creatorID int) ([]solution.Solution, error) {
	return repo.querySolutions(ctx,
		solutionQuery+` JOIN exercice e ON s.exercice_id = e.id WHERE e.createur_id = $1`, creatorID)
}

func (repo solutionRepository) QuerySolutionsByAuthor(ctx context.Context, authorID int) ([]solution.Solution, error) {
	return repo.querySolutions(ctx, solutionQuery+` WHERE s.auteur_id = $1`, authorID)
}

func (repo solutionRepository) GetSolutionByID(ctx context.Context, id int) (solution.Solution, error) {
	var sol solution.Solution
	if err := repo.db.GetContext(ctx, &sol, solutionQuery+` WHERE s.id = $1`, id); err != nil {
		return solution.Solution{}, trapNoRowsErr(err, solution.ErrNotFound, "getting solution")
	}
	sol.AuthorName = authorDisplayName(ctx, repo.db, sol.AuthorID)
	return sol, nil
}

func (repo solutionRepository) CreateSolution(ctx context.Context, sol solution.Solution) (solution.Solution, error) {
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO solution (contenu, date_creation, exercice_id, auteur_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		sol.Content, sol.CreatedAt, sol.ExerciseID, sol.AuthorID,
	).Scan(&sol.ID)
	if err != nil {
		return solution.Solution{}, errors.Wrap(err, "inserting solution")
	}
	sol.AuthorName = authorDisplayName(ctx, repo.db, sol.AuthorID)
	return sol, nil
}

// UpdateSolution refreshes the creation date along with the content; the
// date moves forward on every edit by contract.
func (repo solutionRepository) UpdateSolution(ctx context.Context, sol solution.Solution) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE solution SET contenu = $1, date_creation = $2 WHERE id = $3`,
		sol.Content, sol.CreatedAt, sol.ID,
	)
	if err != nil {
		return errors.Wrap(err, "updating solution")
	}
	return rowsAffected(res, solution.ErrNotFound, "updating solution")
}

func (repo solutionRepository) DeleteSolution(ctx context.Context, id int) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM solution WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting solution")
	}
	return rowsAffected(res, solution.ErrNotFound, "deleting solution")
}
