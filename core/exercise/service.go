package exercise

import (
	"context"
	"errors"
	"time"

	"github.com/trezcool/mazoezi/core"
)

var (
	// errors
	ErrNotFound = errors.New("exercise not found")
)

type (
	Repository interface {
		// Query* results carry the joined subject name for display.
		// No ordering is guaranteed; callers must not assume one.
		QueryAllExercises(ctx context.Context) ([]Exercise, error)
		QueryExercisesBySubject(ctx context.Context, subjectID int) ([]Exercise, error)
		QueryExercisesByCreator(ctx context.Context, creatorID int) ([]Exercise, error)
		GetExerciseByID(ctx context.Context, id int) (Exercise, error)
		CreateExercise(ctx context.Context, ex Exercise) (Exercise, error)
		UpdateExercise(ctx context.Context, ex Exercise) error
		// DeleteExercise removes the exercise's messages and solutions, then
		// the exercise row, in a single transaction. Any failure rolls the
		// whole deletion back before returning.
		DeleteExercise(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Exercise, error) {
	return svc.repo.QueryAllExercises(ctx)
}

func (svc *Service) QueryBySubject(ctx context.Context, subjectID int) ([]Exercise, error) {
	return svc.repo.QueryExercisesBySubject(ctx, subjectID)
}

func (svc *Service) QueryByCreator(ctx context.Context, creatorID int) ([]Exercise, error) {
	return svc.repo.QueryExercisesByCreator(ctx, creatorID)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Exercise, error) {
	return svc.repo.GetExerciseByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ne NewExercise) (Exercise, error) {
	if err := ne.Validate(); err != nil {
		return Exercise{}, err
	}
	ex := Exercise{
		Title:       ne.Title,
		Description: ne.Description,
		CreatedAt:   time.Now().UTC(),
		SubjectID:   ne.SubjectID,
		CreatorID:   ne.CreatorID,
	}
	return svc.repo.CreateExercise(ctx, ex)
}

func (svc *Service) Update(ctx context.Context, id int, ue UpdateExercise) error {
	if err := ue.Validate(); err != nil {
		return err
	}
	return svc.repo.UpdateExercise(ctx, Exercise{
		ID:          id,
		Title:       ue.Title,
		Description: ue.Description,
	})
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	if err := svc.repo.DeleteExercise(ctx, id); err != nil {
		if err != ErrNotFound {
			svc.log.Error("deleting exercise", err, id)
		}
		return err
	}
	return nil
}
