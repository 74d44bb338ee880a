package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/flagx"
	"github.com/dmitrijs2005/hopeconnect/internal/server/auth"
	"github.com/dmitrijs2005/hopeconnect/internal/server/services"
	"golang.org/x/term"
)

var ErrUnknownCommand = errors.New("unknown command")

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

const usage = `Usage: hopeconnect-admin [server flags] <command> [command flags]

Commands:
  migrate                                   apply pending schema migrations
  create-admin -email E [-password P] [-first F] [-last L]
  promote -email E [-role admin|user]       change the role of a user
  help                                      show this message
`

// Run executes the command named by the first non-flag argument, applying
// pending migrations first where the command needs the schema. Server flags
// such as -e and -d are skipped.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, rest := splitCommand(args)

	switch cmd {
	case "", "help":
		fmt.Fprint(a.out, usage)
		return nil
	case "migrate":
		return a.runMigrate(ctx)
	case "create-admin":
		return a.runCreateAdmin(ctx, rest)
	case "promote":
		return a.runPromote(ctx, rest)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// serverFlags take a value and belong to the shared server configuration.
var serverFlags = map[string]struct{}{
	"-a": {}, "-e": {}, "-d": {}, "-s": {}, "-t": {}, "-n": {}, "-l": {}, "-c": {}, "-config": {},
}

func splitCommand(args []string) (string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return arg, args[i+1:]
		}
		if _, ok := serverFlags[arg]; ok && i+1 < len(args) {
			i++
		}
	}
	return "", nil
}

func (a *App) runMigrate(ctx context.Context) error {
	if err := a.migrate(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	fmt.Fprintln(a.out, "Migrations applied")
	return nil
}

func (a *App) runCreateAdmin(ctx context.Context, args []string) error {
	var in services.RegisterInput

	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&in.Email, "email", "", "admin email")
	fs.StringVar(&in.Password, "password", "", "admin password (prompted when omitted)")
	fs.StringVar(&in.FirstName, "first", "Admin", "first name")
	fs.StringVar(&in.LastName, "last", "User", "last name")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-password", "-first", "-last"})); err != nil {
		return err
	}

	if in.Password == "" && in.Email != "" {
		fmt.Fprint(a.out, "Enter password: ")
		pw, err := readPassword()
		fmt.Fprintln(a.out)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		in.Password = string(pw)
	}

	if err := a.migrate(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	user, err := a.users.RegisterAdmin(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Admin %s created with id %d\n", user.Email, user.ID)
	return nil
}

func (a *App) runPromote(ctx context.Context, args []string) error {
	var email, role string

	fs := flag.NewFlagSet("promote", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&email, "email", "", "user email")
	fs.StringVar(&role, "role", auth.RoleAdmin, "new role (admin|user)")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-role"})); err != nil {
		return err
	}
	if email == "" {
		return common.MissingFieldError("email")
	}

	if err := a.migrate(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	user, err := a.users.SetRole(ctx, email, role)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User %s now has role %s\n", user.Email, user.Role)
	return nil
}

