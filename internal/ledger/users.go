package ledger

import (
	"strings"

	"github.com/ridepoolhq/carpool-backend/internal/models"
	"github.com/ridepoolhq/carpool-backend/internal/store"
)

const minPasswordLength = 6

// UserLedger registers users and checks credentials. Emails are normalized
// (trimmed, lower-cased) before storage and lookup, and must be unique.
type UserLedger struct {
	store *store.Store
}

func NewUserLedger(s *store.Store) *UserLedger {
	return &UserLedger{store: s}
}

func (l *UserLedger) Register(email, password, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || password == "" {
		return models.User{}, ErrEmailAndPasswordRequired
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	var user models.User
	err := l.store.Update(func(ds *models.Dataset) error {
		for _, u := range ds.Users {
			if u.Email == email {
				return ErrEmailExists
			}
		}
		user = models.User{
			ID:        store.NextID(ds.Users),
			Email:     email,
			Name:      name,
			CreatedAt: models.NowUTC(),
		}
		if err := user.SetPassword(password); err != nil {
			return err
		}
		ds.Users = append(ds.Users, user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate answers invalid_credentials for both an unknown email and a
// wrong password; the two cases are indistinguishable to the caller.
func (l *UserLedger) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	ds, err := l.store.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range ds.Users {
		if u.Email == email {
			if err := u.CheckPassword(password); err != nil {
				return models.User{}, ErrInvalidCredentials
			}
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Get returns the user by id, or false when no such user exists.
func (l *UserLedger) Get(userID int) (models.User, bool, error) {
	ds, err := l.store.Load()
	if err != nil {
		return models.User{}, false, err
	}
	if u := ds.UserByID(userID); u != nil {
		return *u, true, nil
	}
	return models.User{}, false, nil
}
