package inmemdb

import (
	"context"

	"github.com/trezcool/mazoezi/core/solution"
)

type solutionRepository struct {
	db *DB
}

var _ solution.Repository = (*solutionRepository)(nil) // interface compliance check

func NewSolutionRepository(db *DB) *solutionRepository {
	return &solutionRepository{db: db}
}

func (repo *solutionRepository) query(match func(solution.Solution) bool) []solution.Solution {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	sols := make([]solution.Solution, 0)
	for _, sol := range repo.db.solutions {
		if match(*sol) {
			s := *sol
			s.AuthorName = repo.db.displayName(s.AuthorID)
			sols = append(sols, s)
		}
	}
	return sols
}

func (repo *solutionRepository) QuerySolutionsByExercise(_ context.Context, exerciseID int) ([]solution.Solution, error) {
	return repo.query(func(sol solution.Solution) bool { return sol.ExerciseID == exerciseID }), nil
}

func (repo *solutionRepository) QuerySolutionsByExerciseCreator(_ context.Context, creatorID int) ([]solution.Solution, error) {
	repo.db.mu.RLock()
	creatorExercises := make(map[int]bool)
	for _, ex := range repo.db.exercises {
		if ex.CreatorID == creatorID {
			creatorExercises[ex.ID] = true
		}
	}
	repo.db.mu.RUnlock()

	return repo.query(func(sol solution.Solution) bool { return creatorExercises[sol.ExerciseID] }), nil
}

func (repo *solutionRepository) QuerySolutionsByAuthor(_ context.Context, authorID int) ([]solution.Solution, error) {
	return repo.query(func(sol solution.Solution) bool { return sol.AuthorID == authorID }), nil
}

func (repo *solutionRepository) GetSolutionByID(_ context.Context, id int) (solution.Solution, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if sol, ok := repo.db.solutions[id]; ok {
		s := *sol
		s.AuthorName = repo.db.displayName(s.AuthorID)
		return s, nil
	}
	return solution.Solution{}, solution.ErrNotFound
}

func (repo *solutionRepository) CreateSolution(_ context.Context, sol solution.Solution) (solution.Solution, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	sol.ID = repo.db.nextID()
	repo.db.solutions[sol.ID] = &sol
	s := sol
	s.AuthorName = repo.db.displayName(s.AuthorID)
	return s, nil
}

func (repo *solutionRepository) UpdateSolution(_ context.Context, sol solution.Solution) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	curr, ok := repo.db.solutions[sol.ID]
	if !ok {
		return solution.ErrNotFound
	}
	curr.Content = sol.Content
	curr.CreatedAt = sol.CreatedAt
	return nil
}

func (repo *solutionRepository) DeleteSolution(_ context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.solutions[id]; !ok {
		return solution.ErrNotFound
	}
	delete(repo.db.solutions, id)
	return nil
}
