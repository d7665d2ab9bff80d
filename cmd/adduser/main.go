// Command adduser provisions a user account from the terminal, prompting for
// the password when it is not passed as a flag.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"spendtrack/internal/app"
	"spendtrack/internal/bootstrap"
	"spendtrack/internal/repository"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Username")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> [-password <password>]")
		fs.PrintDefaults()
		return errors.New("missing required flag: user")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("read password failed: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	boot, err := bootstrap.New(context.Background())
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer boot.Close()

	authService := app.NewAuthService(repository.NewUserRepository(boot.DB))
	user, err := authService.Register(app.RegisterInput{
		Username: *username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created with ID %d\n", user.Username, user.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	// Non-terminal stdin (pipes, tests) reads a single line instead.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
