// bootstrap.go - Recreates a development database with sample data

package database

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go-traits-backend/models"
)

// DefaultBootstrapPath is the file the bootstrap command recreates.
const DefaultBootstrapPath = "main.db"

// Sample user inserted by Bootstrap.
const (
	SampleUserID       = 0
	SampleUserUsername = "Janusz@example.com"
	SampleUserPassword = "12345"
)

// Bootstrap deletes the database file at path if it exists, recreates the
// schema, inserts the sample user and prints every user to out.
// It stops at the first failure.
func Bootstrap(path string, schema models.Schema, out io.Writer) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	db, err := Open(path, schema)
	if err != nil {
		return err
	}
	defer Close(db)

	// gorm skips a zero primary key on Create, so id 0 needs an explicit insert.
	err = db.Exec("INSERT INTO users (id, username, password) VALUES (?, ?, ?)",
		SampleUserID, SampleUserUsername, SampleUserPassword).Error
	if err != nil {
		return fmt.Errorf("insert sample user: %w", err)
	}

	var users []models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		fmt.Fprintln(out, u.ID, u.Username)
		fmt.Fprintln(out, u)
	}
	return nil
}
