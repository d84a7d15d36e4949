package models

import "time"

// User status values. A deleted user keeps its row with StatusDeleted.
const (
	StatusActive   = 0
	StatusReserved = 1
	StatusDeleted  = 2
)

type User struct {
	ID         int       `json:"id" gorm:"primarykey"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Status     int       `json:"status" gorm:"default:0"`
	ModifiedAt time.Time `json:"modified_at" gorm:"autoUpdateTime"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
