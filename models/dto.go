package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" validate:"required,min=6,max=64"`
	Email    string `json:"email" validate:"required,email,max=120"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
}

// ProfileRequest wraps the profile payload the way clients send it:
// {"profile": {...}}. Every field is required; there is no partial update.
type ProfileRequest struct {
	Profile ProfilePayload `json:"profile" validate:"required"`
}

type ProfilePayload struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	ContactNo string `json:"contact_no" validate:"required,max=15"`
	Dob       string `json:"dob" validate:"required"`
	Bio       string `json:"bio" validate:"required"`
	Country   string `json:"country" validate:"required,max=100"`
}

type RoleRequest struct {
	RoleName        string `json:"role_name" validate:"required,max=50"`
	RoleDescription string `json:"role_description" validate:"max=100"`
}

// UserSummary is the narrow user read: identifier, username and email only.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDetails joins a user to its profile. Profile fields are null when the
// user has no profile row.
type UserDetails struct {
	UserID    int     `json:"user_id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ContactNo *string `json:"contact_no"`
	Dob       *string `json:"dob"`
	Bio       *string `json:"bio"`
	Country   *string `json:"country"`
}

// UserProfileImages is the widest read: user, profile, and every associated
// image name/url aggregated into comma-joined strings. Order among images is
// not guaranteed.
type UserProfileImages struct {
	UserID     int     `json:"user_id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Status     int     `json:"status"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	ContactNo  *string `json:"contact_no"`
	Dob        *string `json:"dob"`
	Bio        *string `json:"bio"`
	Country    *string `json:"country"`
	ImageNames *string `json:"image_names" gorm:"column:image_names"`
	ImageURLs  *string `json:"image_urls" gorm:"column:image_urls"`
}

// UserDetailsImages is the list-read variant with aggregated image urls.
type UserDetailsImages struct {
	UserID    int     `json:"user_id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ContactNo *string `json:"contact_no"`
	Dob       *string `json:"dob"`
	Bio       *string `json:"bio"`
	Country   *string `json:"country"`
	ImageURLs *string `json:"image_urls" gorm:"column:image_urls"`
}

type UserRoleDetails struct {
	UserID      int     `json:"user_id"`
	Username    string  `json:"username"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UserWithDetails pairs the narrow and joined reads for the combined endpoint.
type UserWithDetails struct {
	User    *UserSummary `json:"user"`
	Details *UserDetails `json:"details"`
}
