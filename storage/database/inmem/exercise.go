package inmemdb

import (
	"context"

	"github.com/trezcool/mazoezi/core/exercise"
)

type exerciseRepository struct {
	db *DB
}

var _ exercise.Repository = (*exerciseRepository)(nil) // interface compliance check

func NewExerciseRepository(db *DB) *exerciseRepository {
	return &exerciseRepository{db: db}
}

// withSubjectName must be called with db.mu held (read or write).
func (repo *exerciseRepository) withSubjectName(ex exercise.Exercise) exercise.Exercise {
	if sub, ok := repo.db.subjects[ex.SubjectID]; ok {
		ex.SubjectName = sub.Name
	}
	return ex
}

func (repo *exerciseRepository) query(match func(exercise.Exercise) bool) []exercise.Exercise {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	exs := make([]exercise.Exercise, 0)
	for _, ex := range repo.db.exercises {
		if match(*ex) {
			exs = append(exs, repo.withSubjectName(*ex))
		}
	}
	return exs
}

func (repo *exerciseRepository) QueryAllExercises(_ context.Context) ([]exercise.Exercise, error) {
	return repo.query(func(exercise.Exercise) bool { return true }), nil
}

func (repo *exerciseRepository) QueryExercisesBySubject(_ context.Context, subjectID int) ([]exercise.Exercise, error) {
	return repo.query(func(ex exercise.Exercise) bool { return ex.SubjectID == subjectID }), nil
}

func (repo *exerciseRepository) QueryExercisesByCreator(_ context.Context, creatorID int) ([]exercise.Exercise, error) {
	return repo.query(func(ex exercise.Exercise) bool { return ex.CreatorID == creatorID }), nil
}

func (repo *exerciseRepository) GetExerciseByID(_ context.Context, id int) (exercise.Exercise, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if ex, ok := repo.db.exercises[id]; ok {
		return repo.withSubjectName(*ex), nil
	}
	return exercise.Exercise{}, exercise.ErrNotFound
}

func (repo *exerciseRepository) CreateExercise(_ context.Context, ex exercise.Exercise) (exercise.Exercise, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	ex.ID = repo.db.nextID()
	repo.db.exercises[ex.ID] = &ex
	return repo.withSubjectName(ex), nil
}

func (repo *exerciseRepository) UpdateExercise(_ context.Context, ex exercise.Exercise) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	curr, ok := repo.db.exercises[ex.ID]
	if !ok {
		return exercise.ErrNotFound
	}
	curr.Title = ex.Title
	curr.Description = ex.Description
	return nil
}

func (repo *exerciseRepository) DeleteExercise(_ context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.exercises[id]; !ok {
		return exercise.ErrNotFound
	}
	for msgID, msg := range repo.db.messages {
		if msg.ExerciseID == id {
			delete(repo.db.messages, msgID)
		}
	}
	for solID, sol := range repo.db.solutions {
		if sol.ExerciseID == id {
			delete(repo.db.solutions, solID)
		}
	}
	delete(repo.db.exercises, id)
	return nil
}
