package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/user"
)

const userQuery = `SELECT id, email, mot_de_passe, role, nom FROM utilisateur`

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO utilisateur (email, mot_de_passe, role, nom) VALUES ($1, $2, $3, $4) RETURNING id`,
		usr.Email, usr.Password, usr.Role, usr.Name,
	).Scan(&usr.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var usr user.User
	if err := repo.db.GetContext(ctx, &usr, userQuery+` WHERE id = $1`, id); err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user")
	}
	return usr, nil
}

func (repo userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var usr user.User
	if err := repo.db.GetContext(ctx, &usr, userQuery+` WHERE email = $1`, email); err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user")
	}
	return usr, nil
}

func (repo userRepository) GetUserByEmailAndRole(ctx context.Context, email, role string) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(ctx, &usr, userQuery+` WHERE email = $1 AND role = $2`, email, role)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user")
	}
	return usr, nil
}

func (repo userRepository) UserEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM utilisateur WHERE email = $1)`, email)
	if err != nil {
		return false, errors.Wrap(err, "checking user email")
	}
	return exists, nil
}

func (repo userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	users := make([]user.User, 0)
	if err := repo.db.SelectContext(ctx, &users, userQuery); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return users, nil
}

// UpdateUser never touches the email; accounts keep their identity.
func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE utilisateur SET mot_de_passe = $1, role = $2, nom = $3 WHERE id = $4`,
		usr.Password, usr.Role, usr.Name, usr.ID,
	)
	if err != nil {
		return errors.Wrap(err, "updating user")
	}
	return rowsAffected(res, user.ErrNotFound, "updating user")
}

func (repo userRepository) DeleteUsersByID(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := repo.db.ExecContext(ctx, `DELETE FROM utilisateur WHERE id = ANY($1)`, pq.Array(ids))
	return errors.Wrap(err, "deleting users")
}
