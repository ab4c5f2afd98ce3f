package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:   apply all pending migrations
// - down: roll back one migration

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)

	upPath := upCmd.String("path", "db/migrations", "Directory holding the migration files")
	downPath := downCmd.String("path", "db/migrations", "Directory holding the migration files")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := runSubcommand(upCmd, downCmd, upPath, downPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(upCmd, downCmd *flag.FlagSet, upPath, downPath *string) error {
	switch os.Args[1] {
	case "up":
		if err := upCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse up flags")
		}

		return runUp(*upPath)
	case "down":
		if err := downCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse down flags")
		}

		return runDown(*downPath)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func runUp(path string) error {
	migrator, err := newMigrator(path)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}

		return errors.Wrap(err, "migrate up failed")
	}

	return nil
}

func runDown(path string) error {
	migrator, err := newMigrator(path)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}

		return errors.Wrap(err, "migrate down failed")
	}

	return nil
}

func newMigrator(path string) (*migrate.Migrate, error) {
	migrator, err := migrate.New("file://"+path, databaseURL())
	if err != nil {
		return nil, errors.Wrap(err, "init migrator failed")
	}

	return migrator, nil
}

// databaseURL builds the connection URL. DATABASE_URL wins when set;
// otherwise the URL is composed from the same POSTGRES_* variables the
// service config reads.
func databaseURL() string {
	if fromEnv := os.Getenv("DATABASE_URL"); fromEnv != "" {
		return fromEnv
	}

	host := envOrDefault("POSTGRES_MASTER_HOST", "localhost")
	port := envOrDefault("POSTGRES_MASTER_PORT", "5432")
	user := envOrDefault("POSTGRES_MASTER_USERNAME", "postgres")
	password := os.Getenv("POSTGRES_MASTER_PASSWORD")
	dbName := envOrDefault("POSTGRES_DBNAME", "tasktag")
	sslMode := envOrDefault("POSTGRES_SSLMODE", "disable")

	u := &url.URL{
		Scheme: "postgres",
		Host:   host + ":" + port,
		User:   url.UserPassword(user, password),
		Path:   dbName,
	}
	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up      Apply all pending migrations")
	fmt.Println("  down    Roll back the most recent migration")
	fmt.Println("")
	fmt.Println("Use 'migrate <command> -h' for more information about a command.")
}
