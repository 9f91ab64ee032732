package subject

import (
	"context"
	"errors"

	"github.com/trezcool/mazoezi/core"
)

var (
	// errors
	ErrNotFound     = errors.New("subject not found")
	ErrNameTaken    = errors.New("a subject with this name already exists")
	ErrHasExercises = errors.New("subject still has exercises")
)

type (
	Repository interface {
		// QueryAllSubjects returns all subjects ordered by name ascending;
		// empty non-nil slice when there are none.
		QueryAllSubjects(ctx context.Context) ([]Subject, error)
		GetSubjectByID(ctx context.Context, id int) (Subject, error)
		// SubjectExists does an exact, case-sensitive match on the name.
		SubjectExists(ctx context.Context, name string) (bool, error)
		CreateSubject(ctx context.Context, name string) (Subject, error)
		UpdateSubject(ctx context.Context, sub Subject) error
		// DeleteSubject fails with ErrHasExercises while any exercise still
		// references the subject; it never cascades.
		DeleteSubject(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryAllSubjects(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

func (svc *Service) Exists(ctx context.Context, name string) (bool, error) {
	return svc.repo.SubjectExists(ctx, core.CleanString(name))
}

func (svc *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	if err := ns.Validate(ctx, svc); err != nil {
		return Subject{}, err
	}
	return svc.repo.CreateSubject(ctx, ns.Name)
}

func (svc *Service) Update(ctx context.Context, sub Subject) error {
	sub.Name = core.CleanString(sub.Name)
	return svc.repo.UpdateSubject(ctx, sub)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	if err := svc.repo.DeleteSubject(ctx, id); err != nil {
		if err == ErrHasExercises {
			svc.log.Warn("subject deletion blocked by dependent exercises", id)
		}
		return err
	}
	return nil
}
