package repositories

import "gorm.io/gorm"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(80) UNIQUE NOT NULL,
		password VARCHAR(64) NOT NULL,
		email VARCHAR(120) UNIQUE NOT NULL,
		status SMALLINT NOT NULL DEFAULT 0 CHECK (status IN (0, 1, 2)),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		contact_no VARCHAR(15),
		dob DATE,
		bio TEXT,
		country VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		id SERIAL PRIMARY KEY,
		image_name VARCHAR(100) NOT NULL,
		image_url VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_image (
		user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image_id INT NOT NULL REFERENCES images(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, image_id)
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL DEFAULT 'Standard',
		description VARCHAR(100)
	)`,
}

// EnsureSchema creates the tables if they are absent. It runs on every
// startup; existing tables are left untouched. Any DDL error is returned
// and the caller is expected to treat it as fatal.
func EnsureSchema(db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
