package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Fixtures are the rows written by Seed, in insertion order.
var Fixtures = []User{
	{Login: "smaldini", Firstname: "Stéphane", Lastname: "Maldini"},
	{Login: "jlong", Firstname: "Josh", Lastname: "Long"},
	{Login: "sdeleuze", Firstname: "Sébastien", Lastname: "Deleuze"},
	{Login: "bclozel", Firstname: "Brian", Lastname: "Clozel"},
}

// Seed creates the users table if needed, empties it and inserts Fixtures.
// Steps run strictly in order; the first failure stops the sequence and is
// returned. Running it twice leaves the same four rows.
func Seed(ctx context.Context, repo Repository, logger *zap.Logger) error {
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("seed: ensure schema: %w", err)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("seed: clear: %w", err)
	}
	for _, u := range Fixtures {
		login, err := repo.Save(ctx, u)
		if err != nil {
			return fmt.Errorf("seed: save: %w", err)
		}
		logger.Info("user saved", zap.String("login", login))
	}
	return nil
}
