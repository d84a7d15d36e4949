package models

// ErrorDuplicateEntry reports a unique-constraint violation (username/email).
type ErrorDuplicateEntry struct {
	Message string
}

func (e ErrorDuplicateEntry) Error() string {
	return e.Message
}

// ErrorNotFound reports a missing target row or a reference to a user
// that does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorInvalidInput reports a missing or malformed required field.
type ErrorInvalidInput struct {
	Message string
}

func (e ErrorInvalidInput) Error() string {
	return e.Message
}

// ErrorStorage reports any other transactional/database failure. The
// original driver message is preserved for the response body.
type ErrorStorage struct {
	Message string
}

func (e ErrorStorage) Error() string {
	return e.Message
}
