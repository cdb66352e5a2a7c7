// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/angelamos/memorial/internal/config"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/martyr"
	"github.com/angelamos/memorial/internal/permission"
	"github.com/angelamos/memorial/internal/user"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background(), *configPath, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	core.SetPasswordCost(cfg.Auth.BcryptCost)

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	if err := core.Migrate(ctx, db.DB.DB, logger); err != nil {
		return err
	}

	users := user.NewRepository(db.DB)
	if err := seedAdmin(ctx, users, cfg.Seed, logger); err != nil {
		return err
	}

	tx := core.NewTxManager(db.DB)
	martyrs := martyr.NewRepository(db.DB)

	created := 0
	for _, rec := range records {
		ok, err := seedMartyrRecord(ctx, tx, martyrs, rec)
		if err != nil {
			return fmt.Errorf("seed %s: %w", rec.name, err)
		}
		if ok {
			created++
			logger.Info("martyr created", "name", rec.name, "location", rec.location)
		}
	}

	logger.Info("seed complete", "martyrs_created", created, "martyrs_total", len(records))
	return nil
}

// seedAdmin creates the bootstrap administrator, or promotes an existing
// account with that email.
func seedAdmin(
	ctx context.Context,
	users user.Repository,
	cfg config.SeedConfig,
	logger *slog.Logger,
) error {
	email := core.NormalizeEmail(cfg.AdminEmail)
	if email == "" || cfg.AdminPassword == "" {
		logger.Warn("admin credentials not configured, skipping admin")
		return nil
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == permission.RoleAdmin {
			logger.Info("admin already exists", "email", email)
			return nil
		}
		existing.Role = permission.RoleAdmin
		if err := users.Update(ctx, existing); err != nil {
			return fmt.Errorf("promote admin: %w", err)
		}
		logger.Info("existing account promoted to admin", "email", email)
		return nil
	case !errors.Is(err, core.ErrNotFound):
		return fmt.Errorf("lookup admin: %w", err)
	}

	if check := core.ValidatePassword(cfg.AdminPassword); !check.Valid {
		return fmt.Errorf("admin password: %s", strings.Join(check.Errors, "; "))
	}

	hash, err := core.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &user.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(cfg.AdminName),
		Role:         permission.RoleAdmin,
		IsVerified:   true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logger.Info("admin created", "email", email, "id", admin.ID)
	return nil
}

// seedMartyrRecord inserts one record with its testimonials and sources.
// A record already present by name and location is left alone.
func seedMartyrRecord(
	ctx context.Context,
	tx *core.TxManager,
	repo martyr.Repository,
	rec seedMartyr,
) (bool, error) {
	matches, err := repo.Search(ctx, rec.name)
	if err != nil {
		return false, err
	}
	for _, m := range matches {
		if strings.EqualFold(m.Name, rec.name) && strings.EqualFold(m.Location, rec.location) {
			return false, nil
		}
	}

	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		m := &martyr.Martyr{
			Name:         rec.name,
			Date:         rec.date,
			Location:     rec.location,
			Cause:        &rec.cause,
			Description:  &rec.description,
			ImageURL:     ptr(placeholderImage),
			Age:          &rec.age,
			Gender:       &rec.gender,
			Occupation:   &rec.occupation,
			FamilyStatus: &rec.familyStatus,
			IsVerified:   true,
		}
		if err := repo.Create(ctx, m); err != nil {
			return err
		}

		for _, t := range rec.testimonials {
			if err := repo.CreateTestimonial(ctx, &martyr.Testimonial{
				Content:      t.content,
				Author:       t.author,
				Relationship: ptr(t.relationship),
				Date:         ptr(t.date),
				IsVerified:   true,
				MartyrID:     &m.ID,
			}); err != nil {
				return err
			}
		}

		for _, s := range rec.sources {
			if err := repo.CreateSource(ctx, &martyr.Source{
				Name:     s.name,
				URL:      ptr(s.url),
				Date:     s.date,
				Type:     s.kind,
				MartyrID: &m.ID,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func ptr[T any](v T) *T {
	return &v
}
