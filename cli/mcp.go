// ABOUTME: MCP server subcommand
// ABOUTME: Exposes every content store operation as a tool on stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/handlers"
	"github.com/harperreed/newsdesk/models"
)

// ServeCommand starts the MCP server on stdio, acting as identity.
func ServeCommand(svc *core.Service, identity models.Identity) error {
	log.Println("Starting newsdesk MCP server...")

	callCtx := handlers.OperatorContext(identity)
	userHandlers := handlers.NewUserHandlers(svc, callCtx)
	articleHandlers := handlers.NewArticleHandlers(svc, callCtx)
	catalogHandlers := handlers.NewCatalogHandlers(svc, callCtx)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "newsdesk",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "init_owner",
		Description: "Claim the single owner slot (first caller wins, every later call fails)",
	}, userHandlers.InitOwner)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "register_user",
		Description: "Register the caller as an inactive author account",
	}, userHandlers.RegisterUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_user",
		Description: "Set an account's name, role, and active status (owner only)",
	}, userHandlers.UpdateUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_users",
		Description: "List every registered account (owner only)",
	}, userHandlers.ListUsers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "whoami",
		Description: "Show the caller's own account record",
	}, userHandlers.Whoami)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_article",
		Description: "Create a draft article authored by the caller (active accounts only)",
	}, articleHandlers.CreateArticle)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_article",
		Description: "Edit an article; editors claim editorship and control publication status",
	}, articleHandlers.UpdateArticle)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_active_articles",
		Description: "List all published articles",
	}, articleHandlers.ListActiveArticles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_inactive_articles",
		Description: "List all draft articles (editors only)",
	}, articleHandlers.ListInactiveArticles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_all_articles",
		Description: "List every article regardless of status (owner only)",
	}, articleHandlers.ListAllArticles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_active_articles_by_category",
		Description: "List published articles in a category",
	}, articleHandlers.ListActiveArticlesByCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_my_articles",
		Description: "List articles authored by the caller",
	}, articleHandlers.ListMyArticles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_edited_articles",
		Description: "List articles where the caller is the editor of record",
	}, articleHandlers.ListEditedArticles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_category",
		Description: "Create a category (owner only)",
	}, catalogHandlers.CreateCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List all categories",
	}, catalogHandlers.ListCategories)

	// Run server on stdio transport
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
