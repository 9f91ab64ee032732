package user

import (
	"context"
	"strings"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/mazoezi/core"
)

// Roles. The values are persisted in the `role` column and must match the
// legacy desktop client's picklist byte for byte.
const (
	RoleStudent   = "Étudiant"
	RoleProfessor = "Professeur"
)

var Roles = []Role{
	{Name: "Student", Value: RoleStudent},
	{Name: "Professor", Value: RoleProfessor},
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type User struct {
	ID       int         `json:"id" db:"id"`
	Email    string      `json:"email" db:"email"`
	Password string      `json:"-" db:"mot_de_passe"` // opaque credential; interpretation belongs to the Matcher
	Role     string      `json:"role" db:"role"`
	Name     null.String `json:"name" db:"nom"`
}

func (u User) IsProfessor() bool { return u.Role == RoleProfessor }

func (u User) IsStudent() bool { return u.Role == RoleStudent }

// DisplayName returns the stored name, falling back to the email local part.
func (u User) DisplayName() string {
	if u.Name.Valid && u.Name.String != "" {
		return u.Name.String
	}
	return DefaultName(u.Email)
}

// DefaultName derives a display name from an email address' local part.
func DefaultName(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// Matcher abstracts how credentials are stored and compared so hashing can be
// introduced without changing the repository contract.
type Matcher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainMatcher stores and compares credentials verbatim. This preserves the
// legacy schema's behavior; swap in BcryptMatcher on a migrated user table.
type PlainMatcher struct{}

func (PlainMatcher) Hash(password string) (string, error) { return password, nil }

func (PlainMatcher) Verify(stored, password string) bool { return stored == password }

type BcryptMatcher struct{}

func (BcryptMatcher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptMatcher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,userrole"`
	Name            string `json:"name"`
}

func (nu *NewUser) Validate(ctx context.Context, svc *Service) error {
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Name = core.CleanString(nu.Name)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(ctx, nu.Email)
}
