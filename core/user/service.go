package user

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/mazoezi/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
	ErrOwnAccount  = errors.New("cannot delete own account")
)

type (
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		GetUserByEmail(ctx context.Context, email string) (User, error)
		// GetUserByEmailAndRole matches both fields exactly; the credential
		// check happens in the service through the Matcher.
		GetUserByEmailAndRole(ctx context.Context, email, role string) (User, error)
		UserEmailExists(ctx context.Context, email string) (bool, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		UpdateUser(ctx context.Context, usr User) error
		DeleteUsersByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo    Repository
		matcher Matcher
		log     core.Logger
	}
)

func NewService(repo Repository, matcher Matcher, log core.Logger) *Service {
	return &Service{
		repo:    repo,
		matcher: matcher,
		log:     log,
	}
}

func (svc *Service) checkUniqueness(ctx context.Context, email string) error {
	exists, err := svc.repo.UserEmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	}
	return nil
}

// Register validates nu and creates the account. An empty display name
// defaults to the email's local part.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, error) {
	if err := nu.Validate(ctx, svc); err != nil {
		return User{}, err
	}

	name := nu.Name
	if name == "" {
		name = DefaultName(nu.Email)
	}
	pwd, err := svc.matcher.Hash(nu.Password)
	if err != nil {
		return User{}, err
	}
	usr := User{
		Email:    nu.Email,
		Password: pwd,
		Role:     nu.Role,
		Name:     null.StringFrom(name),
	}
	return svc.repo.CreateUser(ctx, usr)
}

// Authenticate returns the user matching email, password and role exactly;
// ErrNotFound otherwise. No distinction is made between a missing account and
// a bad credential.
func (svc *Service) Authenticate(ctx context.Context, email, password, role string) (User, error) {
	usr, err := svc.repo.GetUserByEmailAndRole(ctx, core.CleanString(email, true /* lower */), role)
	if err != nil {
		return User{}, err
	}
	if !svc.matcher.Verify(usr.Password, password) {
		return User{}, ErrNotFound
	}
	return usr, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) Exists(ctx context.Context, email string) (bool, error) {
	return svc.repo.UserEmailExists(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

// ResetPassword replaces the credential of the account registered under email.
func (svc *Service) ResetPassword(ctx context.Context, email, password string) error {
	usr, err := svc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if usr.Password, err = svc.matcher.Hash(password); err != nil {
		return err
	}
	return svc.repo.UpdateUser(ctx, usr)
}

// UpdateOrCreate upserts an account; used by the admin CLI.
func (svc *Service) UpdateOrCreate(ctx context.Context, email, name, role, password string) (User, error) {
	email = core.CleanString(email, true /* lower */)
	name = core.CleanString(name)

	usr, err := svc.GetByEmail(ctx, email)
	if err != nil {
		if err != ErrNotFound {
			return User{}, err
		}
		return svc.Register(ctx, NewUser{
			Email:           email,
			Password:        password,
			PasswordConfirm: password,
			Role:            role,
			Name:            name,
		})
	}

	usr.Role = role
	if name != "" {
		usr.Name = null.StringFrom(name)
	}
	if usr.Password, err = svc.matcher.Hash(password); err != nil {
		return User{}, err
	}
	if err = svc.repo.UpdateUser(ctx, usr); err != nil {
		return User{}, err
	}
	return usr, nil
}

// Delete removes the given accounts. Actors cannot delete their own account
// regardless of role.
func (svc *Service) Delete(ctx context.Context, actor User, ids ...int) error {
	for _, id := range ids {
		if id == actor.ID {
			return ErrOwnAccount
		}
	}
	return svc.repo.DeleteUsersByID(ctx, ids...)
}
