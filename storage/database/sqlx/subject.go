package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/subject"
)

type subjectRepository struct {
	db *sqlx.DB
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *sqlx.DB) *subjectRepository {
	return &subjectRepository{db: db}
}

func (repo subjectRepository) QueryAllSubjects(ctx context.Context) ([]subject.Subject, error) {
	subs := make([]subject.Subject, 0)
	if err := repo.db.SelectContext(ctx, &subs, `SELECT id, nom FROM matiere ORDER BY nom`); err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}
	return subs, nil
}

func (repo subjectRepository) GetSubjectByID(ctx context.Context, id int) (subject.Subject, error) {
	var sub subject.Subject
	if err := repo.db.GetContext(ctx, &sub, `SELECT id, nom FROM matiere WHERE id = $1`, id); err != nil {
		return subject.Subject{}, trapNoRowsErr(err, subject.ErrNotFound, "getting subject")
	}
	return sub, nil
}

func (repo subjectRepository) SubjectExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM matiere WHERE nom = $1)`, name)
	if err != nil {
		return false, errors.Wrap(err, "checking subject name")
	}
	return exists, nil
}

// CreateSubject inserts the subject and reads the generated id back in the
// same statement. Callers are expected to precheck SubjectExists; the unique
// index still backstops the race.
func (repo subjectRepository) CreateSubject(ctx context.Context, name string) (subject.Subject, error) {
	sub := subject.Subject{Name: name}
	err := repo.db.QueryRowxContext(ctx, `INSERT INTO matiere (nom) VALUES ($1) RETURNING id`, name).Scan(&sub.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return subject.Subject{}, subject.ErrNameTaken
		}
		return subject.Subject{}, errors.Wrap(err, "inserting subject")
	}
	return sub, nil
}

func (repo subjectRepository) UpdateSubject(ctx context.Context, sub subject.Subject) error {
	res, err := repo.db.ExecContext(ctx, `UPDATE matiere SET nom = $1 WHERE id = $2`, sub.Name, sub.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return subject.ErrNameTaken
		}
		return errors.Wrap(err, "updating subject")
	}
	return rowsAffected(res, subject.ErrNotFound, "updating subject")
}

// DeleteSubject refuses to delete while exercises still reference the
// subject; it never cascades.
func (repo subjectRepository) DeleteSubject(ctx context.Context, id int) error {
	var count int
	if err := repo.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM exercice WHERE matiere_id = $1`, id); err != nil {
		return errors.Wrap(err, "counting dependent exercises")
	}
	if count > 0 {
		return subject.ErrHasExercises
	}

	res, err := repo.db.ExecContext(ctx, `DELETE FROM matiere WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	return rowsAffected(res, subject.ErrNotFound, "deleting subject")
}
