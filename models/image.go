package models

import "time"

type Image struct {
	ID        int       `json:"id" gorm:"primarykey"`
	ImageName string    `json:"image_name" gorm:"not null"`
	ImageURL  string    `json:"image_url" gorm:"column:image_url;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// UserImage is the many-to-many association between users and images,
// keyed by both sides. Deleting either side cascades through the schema.
type UserImage struct {
	UserID  int `json:"user_id" gorm:"primaryKey"`
	ImageID int `json:"image_id" gorm:"primaryKey"`
}

func (UserImage) TableName() string {
	return "user_image"
}
