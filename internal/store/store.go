// Package store provides the persistence layer for accounts and favourites.
// The interfaces are the contract the handlers depend on; the GORM
// implementations in this package are the production backing. Failures are
// reported as sentinel errors so callers can tell a validation reject or a
// missing record apart from a storage fault.
package store

import (
	"errors"

	"github.com/vcdice-69/Parked-Up/internal/model"
)

var (
	// ErrNotFound is returned when no account exists for the given email.
	ErrNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match the stored one.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation rejects on the write paths.
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrWeakPassword = errors.New("password does not meet strength requirements")
)

// AccountRecord carries the full set of account fields for an update. Partial
// updates are not supported: the caller supplies every field, unchanged ones
// verbatim, and all of them are re-validated.
type AccountRecord struct {
	Username string
	Email    string
	PhoneNo  string
	Password string
}

// AccountStore manages the Accounts table.
type AccountStore interface {
	// Find returns the account registered under email, or ErrNotFound.
	Find(email string) (*model.Account, error)

	// Create validates the fields and inserts a new account. Uniqueness of
	// the email is the caller's concern; check with Find first.
	Create(username, email, phoneNo, password string) error

	// Authenticate checks email and password against the stored account and
	// returns it, or ErrInvalidCredentials.
	Authenticate(email, password string) (*model.Account, error)

	// Update overwrites all four fields of the account registered under
	// currentEmail. If the email changes, ownership of the account's
	// favourites moves to the new email in the same transaction.
	Update(currentEmail string, rec AccountRecord) error

	// Delete removes the account and all of its favourites in one
	// transaction, or returns ErrNotFound.
	Delete(email string) error

	// Count returns the number of registered accounts.
	Count() (int64, error)
}

// FavouriteStore manages the Favourites table.
type FavouriteStore interface {
	// Add inserts an (email, carpark) pair. Duplicates are allowed.
	Add(email, carparkNo string) error

	// Remove deletes every row matching the pair. Removing a pair that was
	// never added is not an error.
	Remove(email, carparkNo string) error

	// List returns the carpark numbers favourited by email, oldest first.
	// An account with no favourites yields an empty slice.
	List(email string) ([]string, error)

	// RenameOwner moves every favourite from oldEmail to newEmail.
	RenameOwner(oldEmail, newEmail string) error

	// DeleteAll removes every favourite belonging to email.
	DeleteAll(email string) error
}
