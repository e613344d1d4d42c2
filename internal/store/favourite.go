package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vcdice-69/Parked-Up/internal/model"
)

type favouriteStore struct {
	db *gorm.DB
}

// NewFavouriteStore returns a FavouriteStore backed by the given database handle.
func NewFavouriteStore(db *gorm.DB) FavouriteStore {
	return &favouriteStore{db: db}
}

func (s *favouriteStore) Add(email, carparkNo string) error {
	fav := model.Favourite{
		UserEmail: email,
		CarparkNo: carparkNo,
	}
	if result := s.db.Create(&fav); result.Error != nil {
		return fmt.Errorf("failed to add favourite: %w", result.Error)
	}
	return nil
}

func (s *favouriteStore) Remove(email, carparkNo string) error {
	result := s.db.
		Where("user_email = ? AND carpark_no = ?", email, carparkNo).
		Delete(&model.Favourite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favourite: %w", result.Error)
	}
	// Zero rows affected is fine: removal is idempotent.
	return nil
}

func (s *favouriteStore) List(email string) ([]string, error) {
	var favs []model.Favourite
	result := s.db.
		Where("user_email = ?", email).
		Order("id").
		Find(&favs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list favourites: %w", result.Error)
	}

	carparks := make([]string, 0, len(favs))
	for _, fav := range favs {
		carparks = append(carparks, fav.CarparkNo)
	}
	return carparks, nil
}

func (s *favouriteStore) RenameOwner(oldEmail, newEmail string) error {
	result := s.db.Model(&model.Favourite{}).
		Where("user_email = ?", oldEmail).
		Update("user_email", newEmail)
	if result.Error != nil {
		return fmt.Errorf("failed to rename favourites owner: %w", result.Error)
	}
	return nil
}

func (s *favouriteStore) DeleteAll(email string) error {
	result := s.db.Where("user_email = ?", email).Delete(&model.Favourite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favourites: %w", result.Error)
	}
	return nil
}
