package account

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account represents a login identity. Passwords are stored as bcrypt hashes;
// the aggregate never sees plain text. Driver accounts are auto-provisioned
// when a driver is registered without one.
type Account struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewAccount creates a new Account with an already hashed password.
func NewAccount(id kernel.UUID, username, email, passwordHash string, role Role) (*Account, error) {
	account := &Account{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setUsername(username),
		account.setPasswordHash(passwordHash),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	account.email = email

	return account, nil
}

// RestoreAccount reconstructs an Account from persistent storage.
func RestoreAccount(
	id kernel.UUID,
	username, email, passwordHash string,
	role Role,
	createdAt time.Time,
) (*Account, error) {
	account := &Account{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setUsername(username),
		account.setPasswordHash(passwordHash),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	account.email = email

	return account, nil
}

// Validate checks that the Account was created via one of the constructors.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() kernel.UUID      { return a.id }
func (a *Account) Username() string     { return a.username }
func (a *Account) Email() string        { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// IsAdmin reports whether the account has the admin role.
func (a *Account) IsAdmin() bool {
	return a.role == RoleAdmin
}

// ChangePassword replaces the stored password hash.
func (a *Account) ChangePassword(passwordHash string) error {
	return a.setPasswordHash(passwordHash)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if strings.TrimSpace(hash) == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
