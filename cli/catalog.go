// ABOUTME: Category CLI commands
// ABOUTME: Human-friendly commands for managing categories
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
)

// AddCategoryCommand creates a category. Owner only.
func AddCategoryCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("add-category", flag.ExitOnError)
	name := fs.String("name", "", "Category name (required)")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	category, err := svc.CreateCategory(callCtx(identity), *name)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	fmt.Printf("✓ Category created: %s (ID: %s)\n", category.Name, category.ID)
	return nil
}

// ListCategoriesCommand lists all categories.
func ListCategoriesCommand(svc *core.Service, identity models.Identity, args []string) error {
	fs := flag.NewFlagSet("list-categories", flag.ExitOnError)
	fs.Parse(args)

	categories, err := svc.AllCategories()
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID")
	fmt.Fprintln(w, "----\t--")
	for _, category := range categories {
		fmt.Fprintf(w, "%s\t%s\n", category.Name, category.ID)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d category(ies)\n", len(categories))
	return nil
}
