package model

import "time"

// Favourite links an account email to a favourited carpark. The pair is not
// unique: the legacy schema allows duplicate rows and removal deletes every
// matching row. UserEmail is a soft reference to Account.Email, kept
// consistent by the rename and delete cascades in the account store.
type Favourite struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserEmail string    `json:"user_email" gorm:"type:varchar(100);index"`
	CarparkNo string    `json:"carpark_no" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at"`
}
