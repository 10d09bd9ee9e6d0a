// ABOUTME: Entry point for the newsdesk MCP server and CLI
// ABOUTME: Routes to the server or CMS commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harperreed/newsdesk/cli"
	"github.com/harperreed/newsdesk/config"
	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
	"github.com/harperreed/newsdesk/store"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/newsdesk)")
	backend := flag.String("backend", "", "Storage backend: badger or sqlite")
	identity := flag.String("identity", "", "Operator identity (default: NEWSDESK_IDENTITY)")
	initOnly := flag.Bool("init", false, "Initialize database and exit")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("newsdesk version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *identity != "" {
		cfg.Identity = *identity
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "serve":
		kv := openStore(cfg)
		defer kv.Close()

		if err := cli.ServeCommand(core.NewService(kv), operatorIdentity(cfg)); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "cms":
		kv := openStore(cfg)
		defer kv.Close()

		log.Printf("Newsdesk store: %s (%s)", storePath(cfg), cfg.Backend)

		if *initOnly {
			log.Println("Store initialized successfully")
			os.Exit(0)
		}

		if len(commandArgs) == 0 {
			fmt.Println("Error: cms requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		svc := core.NewService(kv)
		ident := operatorIdentity(cfg)

		cmsCommand := commandArgs[0]
		cmsArgs := commandArgs[1:]

		var cmdErr error
		switch cmsCommand {
		case "init-owner":
			cmdErr = cli.InitOwnerCommand(svc, ident, cmsArgs)
		case "register":
			cmdErr = cli.RegisterCommand(svc, ident, cmsArgs)
		case "update-user":
			cmdErr = cli.UpdateUserCommand(svc, ident, cmsArgs)
		case "list-users":
			cmdErr = cli.ListUsersCommand(svc, ident, cmsArgs)
		case "whoami":
			cmdErr = cli.WhoamiCommand(svc, ident, cmsArgs)
		case "add-article":
			cmdErr = cli.AddArticleCommand(svc, ident, cmsArgs)
		case "update-article":
			cmdErr = cli.UpdateArticleCommand(svc, ident, cmsArgs)
		case "list-articles":
			cmdErr = cli.ListArticlesCommand(svc, ident, cmsArgs)
		case "add-category":
			cmdErr = cli.AddCategoryCommand(svc, ident, cmsArgs)
		case "list-categories":
			cmdErr = cli.ListCategoriesCommand(svc, ident, cmsArgs)
		default:
			fmt.Printf("Unknown cms command: %s\n\n", cmsCommand)
			printUsage()
			os.Exit(1)
		}
		if cmdErr != nil {
			log.Fatalf("Error: %v", cmdErr)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) store.KV {
	path := storePath(cfg)

	var kv store.KV
	var err error
	switch cfg.Backend {
	case config.BackendSQLite:
		kv, err = store.OpenSQLite(path)
	case config.BackendBadger:
		kv, err = store.OpenBadger(path)
	default:
		log.Fatalf("Unknown backend: %s", cfg.Backend)
	}
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	return kv
}

func storePath(cfg *config.Config) string {
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	return config.DefaultDBPath(cfg.Backend)
}

func operatorIdentity(cfg *config.Config) models.Identity {
	if cfg.Identity == "" {
		log.Fatalf("No identity configured: set --identity or %s", config.EnvIdentity)
	}
	return models.Identity(cfg.Identity)
}

func printUsage() {
	fmt.Printf(`newsdesk v%s - Role-gated content store

USAGE:
  newsdesk [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Store path (default: ~/.local/share/newsdesk)
  --backend <name>       Storage backend: badger (default) or sqlite
  --identity <id>        Operator identity (default: NEWSDESK_IDENTITY)
  --init                 Initialize store and exit (use with 'cms')

COMMANDS:
  serve                  Start MCP server (stdio transport)
  cms                    Content management commands

CMS COMMANDS:
  newsdesk cms init-owner        Claim the owner slot (first caller wins)

  newsdesk cms register          Register as an author account
    --name <name>                  Display name (required)

  newsdesk cms update-user [flags] <id>  Update an account (owner only)
    --name <name>                  Display name
    --role <role>                  Role: author or editor
    --active                       Allow the account to create articles
    Note: flags must come before the user ID

  newsdesk cms list-users        List accounts (owner only)
  newsdesk cms whoami            Show your own account

  newsdesk cms add-article       Create a draft article
    --title <title>                Article title (required)
    --id <id>                      Article id (generated when empty)
    --date <rfc3339>               Publication date (default: now)
    --description <text>           Short summary
    --content <text>               Article body
    --category <id>                Category id

  newsdesk cms update-article [flags] <id>  Edit an article
    --title <title>                Article title
    --date <rfc3339>               Publication date
    --description <text>           Short summary
    --content <text>               Article body
    --published                    Publish (editors only)
    Note: flags must come before the article ID

  newsdesk cms list-articles     List articles (published by default)
    --all                          Every article (owner only)
    --drafts                       Drafts (editors only)
    --mine                         Articles you authored
    --edited                       Articles you edit
    --category <id>                Published articles in a category

  newsdesk cms add-category      Create a category (owner only)
    --name <name>                  Category name (required)

  newsdesk cms list-categories   List categories

EXAMPLES:
  # Start MCP server
  NEWSDESK_IDENTITY=alice newsdesk serve

  # Claim the owner slot and activate an author
  newsdesk --identity boss cms init-owner
  newsdesk --identity boss cms update-user --name "Alice" --role author --active alice

  # Draft and list articles
  newsdesk --identity alice cms add-article --title "Hello" --content "First post"
  newsdesk --identity alice cms list-articles --mine

`, version)
}
