package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/mazoezi/core/subject"
)

type subjectRepository struct {
	db *DB
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *DB) *subjectRepository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) QueryAllSubjects(_ context.Context) ([]subject.Subject, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	subs := make([]subject.Subject, 0, len(repo.db.subjects))
	for _, sub := range repo.db.subjects {
		subs = append(subs, *sub)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
	return subs, nil
}

func (repo *subjectRepository) GetSubjectByID(_ context.Context, id int) (subject.Subject, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if sub, ok := repo.db.subjects[id]; ok {
		return *sub, nil
	}
	return subject.Subject{}, subject.ErrNotFound
}

func (repo *subjectRepository) SubjectExists(_ context.Context, name string) (bool, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, sub := range repo.db.subjects {
		if sub.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (repo *subjectRepository) CreateSubject(_ context.Context, name string) (subject.Subject, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for _, sub := range repo.db.subjects {
		if sub.Name == name {
			return subject.Subject{}, subject.ErrNameTaken
		}
	}
	sub := subject.Subject{ID: repo.db.nextID(), Name: name}
	repo.db.subjects[sub.ID] = &sub
	return sub, nil
}

func (repo *subjectRepository) UpdateSubject(_ context.Context, sub subject.Subject) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	curr, ok := repo.db.subjects[sub.ID]
	if !ok {
		return subject.ErrNotFound
	}
	for _, other := range repo.db.subjects {
		if other.ID != sub.ID && other.Name == sub.Name {
			return subject.ErrNameTaken
		}
	}
	curr.Name = sub.Name
	return nil
}

func (repo *subjectRepository) DeleteSubject(_ context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.subjects[id]; !ok {
		return subject.ErrNotFound
	}
	for _, ex := range repo.db.exercises {
		if ex.SubjectID == id {
			return subject.ErrHasExercises
		}
	}
	delete(repo.db.subjects, id)
	return nil
}
