package model

import "time"

// Account represents a user account stored in the Accounts table.
// Accounts are keyed by email; lookups are exact-match and case-sensitive.
// The password is stored in clear text for parity with the legacy data set
// and is never serialized in responses.
type Account struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	PhoneNo   string    `json:"phone_no" gorm:"type:varchar(20)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
