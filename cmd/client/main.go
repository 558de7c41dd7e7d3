package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-social/internal/adapter"
	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [flags] <command> [args]

commands:
  signup <email> <password> [first name] [last name]
  signin <email> <password>
  profile
  version
  build

flags are shared with the server config; -server sets the API address and
-token (or GO_SOCIAL_TOKEN) the bearer token for profile and version.`

var errUsage = errors.New("invalid usage")

func main() {
	token := flag.String("token", os.Getenv("GO_SOCIAL_TOKEN"), "Bearer token for authenticated commands")
	verbose := flag.Bool("v", false, "Debug logging")

	log := logger.NewConsoleLogger("go-social-client", zerolog.InfoLevel)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if *verbose {
		log.Logger = log.Level(zerolog.DebugLevel)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(*token)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, serverAdapter, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "signup":
		if len(rest) < 2 {
			return errUsage
		}
		user := models.User{Email: rest[0], Password: rest[1]}
		if len(rest) > 2 {
			user.FirstName = rest[2]
		}
		if len(rest) > 3 {
			user.LastName = rest[3]
		}
		resp, err := api.SignUp(ctx, user)
		if err != nil {
			return err
		}
		return printJSON(resp)

	case "signin":
		if len(rest) != 2 {
			return errUsage
		}
		resp, err := api.SignIn(ctx, models.SignInRequest{Email: rest[0], Password: rest[1]})
		if err != nil {
			return err
		}
		return printJSON(resp)

	case "profile":
		user, err := api.Profile(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "version":
		v, err := api.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case "build":
		build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\n", build.BuildVersion())
		fmt.Printf("Build date: %s\n", build.BuildDate())
		fmt.Printf("Build commit: %s\n", build.BuildCommit())
		return nil
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
