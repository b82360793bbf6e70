// Command bootstrap provisions the root admin account and, optionally, a service account.
// It is safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"indieneer/config"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/errors"
	"indieneer/internal/infra/auth"
	"indieneer/internal/infra/identity/firebase"
	logs "indieneer/internal/infra/log"
	"indieneer/internal/infra/persistence/mongo"
	"indieneer/internal/usecase"
	"indieneer/internal/usecase/impl"

	"go.uber.org/fx"
)

type options struct {
	serviceProfile bool
	permissions    string
}

type bootstrapParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config    *config.Config
	Logger    *slog.Logger
	ProfileUC usecase.ProfileUsecase
}

func main() {
	var opts options
	flag.BoolVar(&opts.serviceProfile, "service-profile", false, "also create a service account and print its credentials")
	flag.StringVar(&opts.permissions, "permissions", "", "comma separated permissions of the service account")
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Supply(opts),
		fx.Provide(
			config.New,
			logs.New,
			mongo.New,
			mongo.NewDatabase,
			mongo.NewTransactionManager,
			mongo.NewProfileRepository,
			mongo.NewServiceProfileRepository,
			firebase.New,
			firebase.NewIdentityProvider,
			auth.NewClientSecretService,
			impl.NewProfileService,
		),
		fx.Invoke(register),
	).Run()
}

// register runs the bootstrap once every dependency has started, then stops the app
// with exit code 1 on failure.
func register(params bootstrapParams, opts options) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := run(context.Background(), params, opts); err != nil {
					params.Logger.Error("Bootstrap failed", slog.Any("error", err))
					code = 1
				}
				_ = params.Shutdown(fx.ExitCode(code))
			}()

			return nil
		},
	})
}

func run(ctx context.Context, params bootstrapParams, opts options) error {
	root := params.Config.RootUser
	if root == nil || root.Email == "" || root.Password == "" {
		return errors.New("ROOT_USER_EMAIL and ROOT_USER_PASSWORD are required")
	}

	admin, err := ensureRootAdmin(ctx, params.ProfileUC, root)
	if err != nil {
		return err
	}
	params.Logger.Info("Root admin ready", slog.String("profile_id", admin.ID.Hex()), slog.String("email", admin.Email))

	if !opts.serviceProfile {
		return nil
	}

	out, err := params.ProfileUC.CreateServiceProfile(ctx, usecase.CreateServiceProfileInput{
		Permissions: splitList(opts.permissions),
	})
	if err != nil {
		return errors.Wrap(err, "create service profile")
	}

	// Credentials go to stdout so they can be captured; the secret is not stored in clear anywhere.
	_, err = os.Stdout.WriteString("client_id=" + out.Profile.ClientID + "\nclient_secret=" + out.ClientSecret + "\n")

	return errors.WithStack(err)
}

// ensureRootAdmin creates the account, or promotes it to admin when it already exists.
func ensureRootAdmin(ctx context.Context, profiles usecase.ProfileUsecase, root *config.RootUserConfig) (*entity.Profile, error) {
	nickname := root.Nickname
	if nickname == "" {
		nickname, _, _ = strings.Cut(root.Email, "@")
	}

	profile, err := profiles.Create(ctx, usecase.CreateProfileInput{
		Email:         root.Email,
		Password:      root.Password,
		Nickname:      nickname,
		EmailVerified: true,
		Role:          entity.RoleAdmin,
	})
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
		return nil, errors.Wrap(err, "create root admin")
	}

	profile, err = profiles.FindByEmail(ctx, root.Email)
	if err != nil {
		return nil, errors.Wrap(err, "find root admin")
	}
	if profile.Roles.Contains(entity.RoleAdmin) {
		return profile, nil
	}

	profile, err = profiles.SetRoles(ctx, profile.ID.Hex(), append(profile.Roles, entity.RoleAdmin))
	if err != nil {
		return nil, errors.Wrap(err, "promote root admin")
	}

	return profile, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
