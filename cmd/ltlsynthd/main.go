/*
Ltlsynthd starts an ltlsynth daemon and begins listening for job submissions.

Usage:

	ltlsynthd [flags]

Once started, the daemon listens for HTTP requests and accepts LTL synthesis
jobs submitted as base64-encoded TOML samples, processing them against a
pool of worker goroutines. By default it listens on :8080.

If a JWT token secret is not given, one is automatically generated and seeded
from an OS-provided source of randomness. As a consequence, in this mode of
operation all tokens are rendered invalid as soon as the daemon shuts down.
This is suitable for testing, but must be given via either a CLI flag or
environment variable if running in production.

The flags are:

	-v, --version
		Give the current version of ltlsynthd and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, defaults to the value of environment variable
		LTLSYNTHD_ADDR, and if that is not given, defaults to :8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWTs. If there are less than 32
		bytes in the secret, it is repeated until it is. The maximum size is
		64 bytes. If not given, defaults to the value of environment variable
		LTLSYNTHD_SECRET. If no secret is specified, a random one is
		generated.

	-k, --api-key API_KEY
		Require this API key for POST /api/v1/login. If not given, defaults
		to the value of environment variable LTLSYNTHD_API_KEY.

	--db DRIVER[:PARAMS]
		Use the given job store connection string. DRIVER must be one of:
		inmem, sqlite. inmem takes no further params. sqlite needs the path
		to the database file, e.g. sqlite:/var/lib/ltlsynthd/jobs.db. If not
		given, defaults to the value of environment variable LTLSYNTHD_DB,
		and if that is not given, defaults to inmem.

	-w, --workers N
		Run N worker goroutines processing submitted jobs concurrently.
		Defaults to 2.
*/
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/ltlsynth/internal/version"
	"github.com/dekarrin/ltlsynth/server"
)

const (
	EnvListen = "LTLSYNTHD_ADDR"
	EnvSecret = "LTLSYNTHD_SECRET"
	EnvDB     = "LTLSYNTHD_DB"
	EnvAPIKey = "LTLSYNTHD_API_KEY"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of ltlsynthd and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for JWT signing.")
	flagAPIKey  = pflag.StringP("api-key", "k", "", "Require this API key for login.")
	flagDB      = pflag.String("db", "", "Use the given job store connection string.")
	flagWorkers = pflag.IntP("workers", "w", 0, "Number of worker goroutines to run.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("ltlsynthd v%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	cfg := server.Config{Workers: *flagWorkers}

	cfg.ListenAddress = envOrFlag(EnvListen, "listen", *flagListen)

	dbConnStr := envOrFlag(EnvDB, "db", *flagDB)
	if dbConnStr != "" {
		db, err := server.ParseDBConnString(dbConnStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err.Error())
			os.Exit(1)
		}
		cfg.DB = db
	}

	cfg.APIKey = envOrFlag(EnvAPIKey, "api-key", *flagAPIKey)
	if cfg.APIKey == "" {
		fmt.Fprintf(os.Stderr, "No API key configured; set --api-key or %s.\nDo -h for help.\n", EnvAPIKey)
		os.Exit(1)
	}

	secretStr := envOrFlag(EnvSecret, "secret", *flagSecret)
	secret, err := tokenSecret(secretStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err.Error())
		os.Exit(1)
	}
	cfg.TokenSecret = secret

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("FATAL could not start daemon: %s", err.Error())
	}
	log.Printf("DEBUG Daemon initialized")
	defer srv.Close()

	log.Printf("INFO  Starting ltlsynthd v%s...", version.Current)
	if err := srv.ServeForever(); err != nil {
		log.Fatalf("FATAL %s", err.Error())
	}
}

// envOrFlag returns the flag's value if it was explicitly set on the command
// line, else the named environment variable's value (which may be empty).
func envOrFlag(envName, flagName, flagVal string) string {
	if pflag.Lookup(flagName).Changed {
		return flagVal
	}
	return os.Getenv(envName)
}

// tokenSecret derives a usable JWT signing secret from s, repeating it until
// it meets the minimum size or generating a random one if s is empty.
func tokenSecret(s string) ([]byte, error) {
	if s == "" {
		secret := make([]byte, server.MaxSecretSize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate token secret: %w", err)
		}
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
		return secret, nil
	}

	secret := []byte(s)
	for len(secret) < server.MinSecretSize {
		doubled := make([]byte, len(secret)*2)
		copy(doubled, secret)
		copy(doubled[len(secret):], secret)
		secret = doubled
	}

	if len(secret) > server.MaxSecretSize {
		return nil, fmt.Errorf("token secret is %d bytes, but it must be <= %d bytes", len(secret), server.MaxSecretSize)
	}

	return secret, nil
}
