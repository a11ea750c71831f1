package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the bootstrap accounts the dashboard expects on a fresh
// process: an admin and an HR manager. Seeded credentials are stored hashed;
// records created through the API keep their payload verbatim.
func (s *Store) Seed(ctx context.Context) error {
	accounts := []struct {
		username  string
		password  string
		email     string
		firstName string
		lastName  string
		role      string
	}{
		{"admin", "admin123", "admin@company.com", "Admin", "User", "admin"},
		{"hrmanager", "hr123", "hr@company.com", "HR", "Manager", "hr"},
	}

	for _, account := range accounts {
		existing, err := s.GetUserByUsername(ctx, account.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", account.username, err)
		}

		_, err = s.CreateUser(ctx, map[string]any{
			"username":  account.username,
			"password":  string(hash),
			"email":     account.email,
			"firstName": account.firstName,
			"lastName":  account.lastName,
			"role":      account.role,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", account.username, err)
		}
	}
	return nil
}
