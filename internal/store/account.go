package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vcdice-69/Parked-Up/internal/model"
	"github.com/vcdice-69/Parked-Up/internal/validate"
)

type accountStore struct {
	db *gorm.DB
}

// NewAccountStore returns an AccountStore backed by the given database handle.
func NewAccountStore(db *gorm.DB) AccountStore {
	return &accountStore{db: db}
}

func (s *accountStore) Find(email string) (*model.Account, error) {
	var acc model.Account
	result := s.db.Where("email = ?", email).First(&acc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", result.Error)
	}
	return &acc, nil
}

func (s *accountStore) Create(username, email, phoneNo, password string) error {
	if err := validateFields(email, phoneNo, password); err != nil {
		return err
	}

	acc := model.Account{
		Username: username,
		Email:    email,
		PhoneNo:  phoneNo,
		Password: password,
	}
	if result := s.db.Create(&acc); result.Error != nil {
		return fmt.Errorf("failed to create account: %w", result.Error)
	}
	return nil
}

func (s *accountStore) Authenticate(email, password string) (*model.Account, error) {
	acc, err := s.Find(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Plain-text comparison, matching the legacy stored data. See DESIGN.md.
	if acc.Password != password {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func (s *accountStore) Update(currentEmail string, rec AccountRecord) error {
	if _, err := s.Find(currentEmail); err != nil {
		return err
	}

	if err := validateFields(rec.Email, rec.PhoneNo, rec.Password); err != nil {
		return err
	}

	// The account update and the favourites ownership move must land
	// together, otherwise a failure in between leaves favourites keyed by an
	// email that no longer exists.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Account{}).
			Where("email = ?", currentEmail).
			Updates(map[string]interface{}{
				"username": rec.Username,
				"email":    rec.Email,
				"phone_no": rec.PhoneNo,
				"password": rec.Password,
			})
		if result.Error != nil {
			return result.Error
		}

		if currentEmail != rec.Email {
			result = tx.Model(&model.Favourite{}).
				Where("user_email = ?", currentEmail).
				Update("user_email", rec.Email)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (s *accountStore) Delete(email string) error {
	if _, err := s.Find(email); err != nil {
		return err
	}

	// Favourites first, then the account, in one transaction so a partial
	// failure cannot orphan favourite rows.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("user_email = ?", email).Delete(&model.Favourite{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("email = ?", email).Delete(&model.Account{}); result.Error != nil {
			return result.Error
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (s *accountStore) Count() (int64, error) {
	var count int64
	if result := s.db.Model(&model.Account{}).Count(&count); result.Error != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", result.Error)
	}
	return count, nil
}

func validateFields(email, phoneNo, password string) error {
	if !validate.IsValidEmail(email) {
		return ErrInvalidEmail
	}
	if !validate.IsValidPhone(phoneNo) {
		return ErrInvalidPhone
	}
	if !validate.IsStrongPassword(password) {
		return ErrWeakPassword
	}
	return nil
}
