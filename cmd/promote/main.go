// AngelaMos | 2026
// main.go

// Command promote changes a user's role by email address. It bumps the
// token version so the account's outstanding access tokens stop working.
//
// Usage:
//
//	promote -email=user@example.com [-role=ADMIN] [-config=config.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/angelamos/memorial/internal/config"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/permission"
	"github.com/angelamos/memorial/internal/user"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	email := flag.String("email", "", "email of the account to change")
	role := flag.String("role", string(permission.RoleAdmin), "role to grant")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), *configPath, *email, *role, logger); err != nil {
		logger.Error("promote failed", "error", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	configPath, email, role string,
	logger *slog.Logger,
) error {
	email = core.NormalizeEmail(email)
	if email == "" {
		return errors.New("-email is required")
	}

	newRole, ok := permission.ParseRole(role)
	if !ok {
		return fmt.Errorf("unknown role %q (want one of %s)", role, roleNames())
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	repo := user.NewRepository(db.DB)
	tx := core.NewTxManager(db.DB)

	var previous permission.Role
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		previous = u.Role
		if previous == newRole {
			return nil
		}

		u.Role = newRole
		if err := repo.Update(ctx, u); err != nil {
			return err
		}
		// outstanding access tokens carry the old role
		return repo.IncrementTokenVersion(ctx, u.ID)
	})
	if errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("no account with email %s", email)
	}
	if err != nil {
		return err
	}

	if previous == newRole {
		logger.Info("role unchanged", "email", email, "role", newRole)
		return nil
	}

	logger.Info("role changed",
		"email", email,
		"from", previous,
		"to", newRole,
	)
	return nil
}

func roleNames() string {
	roles := permission.AvailableRoles(permission.RoleAdmin)
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
