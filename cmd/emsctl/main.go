package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ignite/emspanel/internal/config"
	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/emsapi"
	"github.com/ignite/emspanel/internal/pkg/logger"
	"github.com/ignite/emspanel/internal/repository/remote"
	"github.com/ignite/emspanel/internal/service/auth"
	"github.com/ignite/emspanel/internal/service/suppression"
	"github.com/ignite/emspanel/internal/service/token"
	"github.com/ignite/emspanel/internal/service/userdomain"
	"github.com/ignite/emspanel/internal/session"
)

// app bundles the wired services for the command handlers.
type app struct {
	auth         *auth.Service
	tokens       *token.Service
	suppressions *suppression.Service
	domains      *userdomain.Service
	close        func()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	a, err := buildApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "login":
		err = handleLogin(ctx, a, os.Args[2:])
	case "logout":
		err = a.auth.Logout(ctx)
	case "register":
		err = handleRegister(ctx, a, os.Args[2:])
	case "whoami":
		err = handleWhoami(ctx, a, os.Args[2:])
	case "forgot-password":
		err = handleForgotPassword(ctx, a, os.Args[2:])
	case "reset-password":
		err = handleResetPassword(ctx, a, os.Args[2:])
	case "resend-activation":
		err = handleResendActivation(ctx, a, os.Args[2:])
	case "tokens":
		err = handleTokens(ctx, a, os.Args[2:])
	case "suppressions":
		err = handleSuppressions(ctx, a, os.Args[2:])
	case "domains":
		err = handleDomains(ctx, a, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp wires config, session backend, API client, repositories, and
// services. EMS_CONFIG selects an optional YAML file; env vars override.
func buildApp() (*app, error) {
	cfg, err := config.LoadFromEnv(os.Getenv("EMS_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	if cfg.Logging.RedactPII != nil {
		logger.SetRedactPII(*cfg.Logging.RedactPII)
	}

	api, err := cfg.Active()
	if err != nil {
		return nil, err
	}

	var backend session.Backend
	closeBackend := func() {}
	switch cfg.Session.Backend {
	case "redis":
		rb := session.NewRedisBackend(cfg.Session)
		closeBackend = func() { rb.Close() }
		backend = rb
	default:
		dir := cfg.Session.Path
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve home dir: %w", err)
			}
			dir = filepath.Join(home, ".emspanel", "session")
		}
		fb, err := session.NewFileBackend(dir)
		if err != nil {
			return nil, fmt.Errorf("open session dir: %w", err)
		}
		backend = fb
	}

	store := session.New(backend)
	client := emsapi.NewClient(api, store.Cookie)

	authRepo := remote.NewAuthRepository(client, store.User)
	return &app{
		auth:         auth.NewService(authRepo, store),
		tokens:       token.NewService(remote.NewTokenRepository(client)),
		suppressions: suppression.NewService(remote.NewSuppressionRepository(client)),
		domains:      userdomain.NewService(remote.NewUserDomainRepository(client)),
		close:        closeBackend,
	}, nil
}

func handleLogin(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	user, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.FullName(), user.Email)
	return nil
}

func handleRegister(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	first := fs.String("first-name", "", "first name")
	last := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	user, err := a.auth.Register(ctx, auth.RegisterParams{
		FirstName:            *first,
		LastName:             *last,
		Email:                *email,
		Password:             *password,
		PasswordConfirmation: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s (%s)\n", user.FullName(), user.Email)
	return nil
}

func handleWhoami(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	refresh := fs.Bool("refresh", false, "re-fetch the profile from the panel")
	fs.Parse(args)

	var user *domain.User
	if *refresh {
		fetched, err := a.auth.RefreshProfile(ctx)
		if err != nil {
			return err
		}
		user = fetched
	} else {
		cached, ok := a.auth.RestoreCachedUser(ctx)
		if !ok {
			if !a.auth.IsAuthenticated(ctx) {
				return fmt.Errorf("not logged in")
			}
			fetched, err := a.auth.RefreshProfile(ctx)
			if err != nil {
				return err
			}
			cached = fetched
		}
		user = cached
	}

	fmt.Printf("Name:      %s\n", user.FullName())
	fmt.Printf("Email:     %s\n", user.Email)
	fmt.Printf("UUID:      %s\n", user.UUID)
	fmt.Printf("SMTP host: %s:%d\n", user.SMTP.Host, user.SMTP.Port)
	fmt.Printf("Member since: %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}

func handleForgotPassword(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	fs.Parse(args)

	if err := a.auth.ForgotPassword(ctx, *email); err != nil {
		return err
	}
	fmt.Println("Reset email sent if the account exists.")
	return nil
}

func handleResetPassword(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	resetToken := fs.String("token", "", "reset token from the email")
	password := fs.String("password", "", "new password")
	fs.Parse(args)

	if err := a.auth.ResetPassword(ctx, *resetToken, *password, *password); err != nil {
		return err
	}
	fmt.Println("Password updated.")
	return nil
}

func handleResendActivation(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("resend-activation", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	fs.Parse(args)

	if err := a.auth.ResendActivationEmail(ctx, *email); err != nil {
		return err
	}
	fmt.Println("Activation email sent.")
	return nil
}

func printUsage() {
	fmt.Println(`emsctl — EMS panel command line client

Usage:
  emsctl <command> [flags]

Commands:
  login --email <addr> --password <pw>        Sign in and store the session
  logout                                      Sign out and clear the session
  register --first-name --last-name --email --password
  whoami [--refresh]                          Show the signed-in account
  forgot-password --email <addr>              Trigger a password reset email
  reset-password --token <t> --password <pw>  Complete a password reset
  resend-activation --email <addr>            Re-send the activation email

  tokens list|create|update|delete            Manage SMTP API tokens
  suppressions list                           Browse the suppression list
  domains list|create|verify|delete           Manage sending domains

Configuration:
  EMS_CONFIG       path to a YAML config file
  EMS_ENVIRONMENT  development | staging | production
  EMS_BASE_URL     override the panel base URL`)
}
