package models

// UserProfile rows are hard-deleted; the owning User row is not.
// The schema allows multiple profiles per user, the service creates one.
type UserProfile struct {
	ID        int    `json:"id" gorm:"primarykey"`
	UserID    int    `json:"user_id" gorm:"not null"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ContactNo string `json:"contact_no"`
	Dob       string `json:"dob" gorm:"type:date"`
	Bio       string `json:"bio" gorm:"type:text"`
	Country   string `json:"country"`
}
