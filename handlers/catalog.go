// ABOUTME: Category MCP tool handlers
// ABOUTME: Implements create_category and list_categories
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
)

type CatalogHandlers struct {
	svc     *core.Service
	callCtx ContextFunc
}

func NewCatalogHandlers(svc *core.Service, callCtx ContextFunc) *CatalogHandlers {
	return &CatalogHandlers{svc: svc, callCtx: callCtx}
}

type CreateCategoryInput struct {
	Name string `json:"name" jsonschema:"Category name (required)"`
}

type CategoryOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *CatalogHandlers) CreateCategory(_ context.Context, request *mcp.CallToolRequest, input CreateCategoryInput) (*mcp.CallToolResult, CategoryOutput, error) {
	if input.Name == "" {
		return nil, CategoryOutput{}, fmt.Errorf("name is required")
	}

	category, err := h.svc.CreateCategory(h.callCtx(), input.Name)
	if err != nil {
		return nil, CategoryOutput{}, fmt.Errorf("failed to create category: %w", err)
	}

	return nil, categoryToOutput(category), nil
}

type ListCategoriesInput struct{}

type ListCategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
}

func (h *CatalogHandlers) ListCategories(_ context.Context, request *mcp.CallToolRequest, input ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	categories, err := h.svc.AllCategories()
	if err != nil {
		return nil, ListCategoriesOutput{}, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]CategoryOutput, len(categories))
	for i := range categories {
		result[i] = categoryToOutput(&categories[i])
	}
	return nil, ListCategoriesOutput{Categories: result}, nil
}

func categoryToOutput(category *models.Category) CategoryOutput {
	return CategoryOutput{
		ID:   category.ID,
		Name: category.Name,
	}
}
