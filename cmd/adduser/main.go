// Command adduser inserts a user straight into the database. The API
// only lets md and admin accounts create users, so the first account on
// a fresh install has to come from here.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/talmaprime/teaops/pkg/auth"
	"github.com/talmaprime/teaops/pkg/validate"
)

func main() {
	var (
		dsn      = flag.String("d", os.Getenv("DATABASE_URI"), "database DSN")
		username = flag.String("u", "", "username")
		password = flag.String("p", "", "password")
		role     = flag.String("r", "md", "role: admin, md, manager or dataentry")
	)
	flag.Parse()

	if err := run(*dsn, *username, *password, *role); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("user %q created with role %q\n", *username, *role)
}

func run(dsn, username, password, role string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	if !validate.IsRole(role) {
		return fmt.Errorf("unknown role %q", role)
	}

	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword(password)
	if err != nil {
		return fmt.Errorf("can't hash password: %w", err)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("can't connect to database: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)",
		username, hash, role)
	if err != nil {
		return fmt.Errorf("can't insert user: %w", err)
	}
	return nil
}
