// ABOUTME: User CLI commands
// ABOUTME: Human-friendly commands for accounts and the owner slot
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
)

// callCtx stamps the operator identity with wall-clock time.
func callCtx(identity models.Identity) core.Context {
	return core.Context{Caller: identity, Now: time.Now()}
}

// InitOwnerCommand claims the owner slot for the operator identity.
func InitOwnerCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("init-owner", flag.ExitOnError)
	fs.Parse(args)

	owner, err := svc.InitOwner(callCtx(identity))
	if err != nil {
		return fmt.Errorf("failed to initialize owner: %w", err)
	}

	fmt.Printf("✓ Owner initialized: %s\n", owner.ID)
	return nil
}

// RegisterCommand registers the operator identity as an author account.
func RegisterCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "Display name (required)")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	user, err := svc.CreateUser(callCtx(identity), *name)
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	fmt.Printf("✓ Account created: %s (%s)\n", user.Name, user.ID)
	fmt.Println("  The account is inactive until the owner activates it")
	return nil
}

// UpdateUserCommand sets name/role/status for an account. Owner only.
// Flags must come before the user ID.
func UpdateUserCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("update-user", flag.ExitOnError)
	name := fs.String("name", "", "Display name")
	role := fs.String("role", models.RoleAuthor, "Role: author or editor")
	active := fs.Bool("active", false, "Whether the account may create articles")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("user ID is required")
	}

	user, err := svc.UpdateUser(callCtx(identity), models.UserPayload{
		ID:     models.Identity(fs.Arg(0)),
		Name:   *name,
		Role:   *role,
		Active: *active,
	})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	fmt.Printf("✓ Account updated: %s (role=%s active=%t)\n", user.ID, user.Role, user.Active)
	return nil
}

// ListUsersCommand lists all accounts. Owner only.
func ListUsersCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("list-users", flag.ExitOnError)
	fs.Parse(args)

	users, err := svc.ListUsers(callCtx(identity))
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No accounts registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tACTIVE")
	fmt.Fprintln(w, "--\t----\t----\t------")
	for _, user := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", user.ID, user.Name, user.Role, user.Active)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d account(s)\n", len(users))
	return nil
}

// WhoamiCommand shows the operator's own account.
func WhoamiCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	fs.Parse(args)

	user, err := svc.GetSelf(callCtx(identity))
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	fmt.Printf("%s (%s)\n", user.Name, user.ID)
	fmt.Printf("  Role: %s\n", user.Role)
	fmt.Printf("  Active: %t\n", user.Active)
	return nil
}
