package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	appServices "github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// DefaultTerms are created when the academic_terms table is empty.
var DefaultTerms = []string{"ابتدایی", "متوسطه اول", "متوسطه دوم"}

// Options controls what CreateDefaultData inserts.
type Options struct {
	AdminUsername string
	AdminPassword string
}

// CreateDefaultData creates the admin account and the default academic terms
// if they don't exist. Every step runs; failures are joined.
func CreateDefaultData(ctx context.Context, users appServices.UserService, terms appServices.AcademicTermService, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (admin user/academic terms)...")
	var finalErr error

	if opts.AdminUsername != "" {
		_, err := users.Create(ctx, &dto.CreateUserRequest{
			FirstName: "System",
			LastName:  "Administrator",
			Username:  opts.AdminUsername,
			Password:  opts.AdminPassword,
		})
		switch {
		case err == nil:
			lgr.Info().Str("username", opts.AdminUsername).Msg("Default admin user created")
		case errors.Is(err, apperrors.ErrConflict):
			lgr.Debug().Str("username", opts.AdminUsername).Msg("Admin user already exists")
		default:
			lgr.Error().Err(err).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	existing, err := terms.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing academic terms")
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		return finalErr
	}

	for _, name := range DefaultTerms {
		if _, err := terms.Create(ctx, &dto.CreateAcademicTermRequest{Name: name}); err != nil {
			lgr.Error().Err(err).Str("term", name).Msg("Error creating default academic term")
			finalErr = errors.Join(finalErr, err)
		}
	}
	lgr.Info().Int("count", len(DefaultTerms)).Msg("Default academic terms created")

	return finalErr
}
