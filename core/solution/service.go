package solution

import (
	"context"
	"errors"
	"time"

	"github.com/trezcool/mazoezi/core"
)

var (
	// errors
	ErrNotFound = errors.New("solution not found")
)

type (
	Repository interface {
		// Query* results carry the author's display name, degrading to
		// "User <id>" when the author cannot be resolved; a failed lookup
		// never aborts a listing.
		QuerySolutionsByExercise(ctx context.Context, exerciseID int) ([]Solution, error)
		// QuerySolutionsByExerciseCreator filters on the owning exercise's
		// creator, not the solution's author.
		QuerySolutionsByExerciseCreator(ctx context.Context, creatorID int) ([]Solution, error)
		QuerySolutionsByAuthor(ctx context.Context, authorID int) ([]Solution, error)
		GetSolutionByID(ctx context.Context, id int) (Solution, error)
		CreateSolution(ctx context.Context, sol Solution) (Solution, error)
		UpdateSolution(ctx context.Context, sol Solution) error
		DeleteSolution(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) QueryByExercise(ctx context.Context, exerciseID int) ([]Solution, error) {
	return svc.repo.QuerySolutionsByExercise(ctx, exerciseID)
}

func (svc *Service) QueryByExerciseCreator(ctx context.Context, creatorID int) ([]Solution, error) {
	return svc.repo.QuerySolutionsByExerciseCreator(ctx, creatorID)
}

func (svc *Service) QueryByAuthor(ctx context.Context, authorID int) ([]Solution, error) {
	return svc.repo.QuerySolutionsByAuthor(ctx, authorID)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Solution, error) {
	return svc.repo.GetSolutionByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ns NewSolution) (Solution, error) {
	if err := ns.Validate(); err != nil {
		return Solution{}, err
	}
	sol := Solution{
		Content:    ns.Content,
		CreatedAt:  time.Now().UTC(),
		ExerciseID: ns.ExerciseID,
		AuthorID:   ns.AuthorID,
	}
	return svc.repo.CreateSolution(ctx, sol)
}

// Update replaces the content and refreshes the creation date.
func (svc *Service) Update(ctx context.Context, id int, us UpdateSolution) error {
	if err := us.Validate(); err != nil {
		return err
	}
	return svc.repo.UpdateSolution(ctx, Solution{
		ID:        id,
		Content:   us.Content,
		CreatedAt: time.Now().UTC(),
	})
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteSolution(ctx, id)
}
