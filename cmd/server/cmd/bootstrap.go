package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gestion-eventos/internal/api"
	"github.com/gestion-eventos/internal/auth"
	"github.com/gestion-eventos/internal/config"
	"github.com/gestion-eventos/internal/mailer"
	"github.com/gestion-eventos/internal/model"
	"github.com/gestion-eventos/internal/service"
	"github.com/gestion-eventos/internal/storage"
)

var bootstrapRoleID int64

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap-usuario",
	Short: "Create the initial organizer account from ADMIN_* variables",
	Long: `Create the first organizer account so the organizer-only endpoints can be
reached. Reads ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NOMBRE. Running it again
with an existing e-mail leaves the account untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		req, err := bootstrapRequest(cfg.Bootstrap, bootstrapRoleID)
		if err != nil {
			return err
		}

		db, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		if err := db.RunMigrations(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		authService := service.NewAuthService(
			storage.NewAttendeeRepository(db),
			storage.NewUserRepository(db),
			auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL),
			mailer.New(cfg.Email, logger),
			logger,
		)

		user, created, err := authService.EnsureUser(ctx, req)
		if err != nil {
			return fmt.Errorf("bootstrap organizer: %w", err)
		}

		logger.Info().Int64("id", user.ID).Str("email", user.Email).Bool("created", created).Msg("organizer ready")
		return nil
	},
}

// bootstrapRequest builds the organizer account from ADMIN_* and applies the
// same checks as POST /usuarios/crear.
func bootstrapRequest(b config.BootstrapConfig, roleID int64) (model.CreateUserRequest, error) {
	if b.Email == "" || b.Password == "" {
		return model.CreateUserRequest{}, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	req := model.CreateUserRequest{
		Nombre:   b.Nombre,
		Apellido: b.Nombre,
		Email:    b.Email,
		Password: b.Password,
		Telefono: 1,
		DNI:      1,
		RolID:    roleID,
	}
	if err := api.Validate(req); err != nil {
		return model.CreateUserRequest{}, fmt.Errorf("invalid ADMIN_* settings: %w", err)
	}
	return req, nil
}

func init() {
	bootstrapCmd.Flags().Int64Var(&bootstrapRoleID, "rol", 1, "roles.id assigned to the account")
}
