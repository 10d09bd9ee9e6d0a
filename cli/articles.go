// ABOUTME: Article CLI commands
// ABOUTME: Human-friendly commands for drafting, editing, and listing articles
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

// AddArticleCommand creates a draft article for the operator identity.
func AddArticleCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("add-article", flag.ExitOnError)
	id := fs.String("id", "", "Article id (generated when empty)")
	title := fs.String("title", "", "Article title (required)")
	date := fs.String("date", "", "Publication date, RFC 3339 (default: now)")
	description := fs.String("description", "", "Short summary")
	content := fs.String("content", "", "Article body")
	category := fs.String("category", "", "Category id")
	fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	ctx := callCtx(identity)
	articleDate, err := parseDateFlag(*date, ctx.Now)
	if err != nil {
		return err
	}

	article, err := svc.CreateArticle(ctx, models.ArticlePayload{
		ID:          *id,
		Title:       *title,
		Date:        articleDate,
		Description: *description,
		Content:     *content,
		CategoryID:  *category,
	})
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	fmt.Printf("✓ Draft created: %s (ID: %s)\n", article.Title, article.ID)
	return nil
}

// UpdateArticleCommand edits an article. Flags must come before the article ID.
func UpdateArticleCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("update-article", flag.ExitOnError)
	title := fs.String("title", "", "Article title")
	date := fs.String("date", "", "Publication date, RFC 3339 (default: now)")
	description := fs.String("description", "", "Short summary")
	content := fs.String("content", "", "Article body")
	published := fs.Bool("published", false, "Publication status (honored only for editors)")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("article ID is required")
	}

	ctx := callCtx(identity)
	articleDate, err := parseDateFlag(*date, ctx.Now)
	if err != nil {
		return err
	}

	article, err := svc.UpdateArticle(ctx, models.ArticlePayload{
		ID:          fs.Arg(0),
		Title:       *title,
		Date:        articleDate,
		Description: *description,
		Content:     *content,
		Published:   *published,
	})
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	status := "draft"
	if article.Published {
		status = "published"
	}
	fmt.Printf("✓ Article updated: %s (%s, editor: %s)\n", article.Title, status, article.EditorID)
	return nil
}

// ListArticlesCommand lists articles, published by default.
func ListArticlesCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("list-articles", flag.ExitOnError)
	all := fs.Bool("all", false, "Every article regardless of status (owner only)")
	drafts := fs.Bool("drafts", false, "Draft articles (editors only)")
	mine := fs.Bool("mine", false, "Articles authored by you")
	edited := fs.Bool("edited", false, "Articles where you are editor of record")
	category := fs.String("category", "", "Published articles in a category")
	fs.Parse(args)

	var articles []models.Article
	var err error
	switch {
	case *all:
		articles, err = svc.AllArticles(callCtx(identity))
	case *drafts:
		articles, err = svc.InactiveArticles(callCtx(identity))
	case *mine:
		articles, err = svc.ArticlesByAuthor(callCtx(identity))
	case *edited:
		articles, err = svc.ArticlesByEditor(callCtx(identity))
	case *category != "":
		articles, err = svc.ActiveArticlesByCategory(*category)
	default:
		articles, err = svc.ActiveArticles()
	}
	if err != nil {
		return fmt.Errorf("failed to list articles: %w", err)
	}

	if len(articles) == 0 {
		fmt.Println("No articles found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tSTATUS\tAUTHOR\tEDITOR\tCATEGORY\tID")
	fmt.Fprintln(w, "-----\t------\t------\t------\t--------\t--")
	for _, article := range articles {
		status := "draft"
		if article.Published {
			status = "published"
		}
		categoryID := article.CategoryID
		if categoryID == "" {
			categoryID = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			article.Title, status, article.AuthorID, article.EditorID, categoryID, article.ID)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d article(s)\n", len(articles))
	return nil
}

func parseDateFlag(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", value, err)
	}
	return date, nil
}
