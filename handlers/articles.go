// ABOUTME: Article MCP tool handlers
// ABOUTME: Implements create/update plus the article listing tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/newsdesk/core"
	"github.com/harperreed/newsdesk/models"
)

type ArticleHandlers struct {
	svc     *core.Service
	callCtx ContextFunc
}

func NewArticleHandlers(svc *core.Service, callCtx ContextFunc) *ArticleHandlers {
	return &ArticleHandlers{svc: svc, callCtx: callCtx}
}

type CreateArticleInput struct {
	ArticleID   string `json:"article_id,omitempty" jsonschema:"Article id; generated when empty"`
	Title       string `json:"title" jsonschema:"Article title (required)"`
	Date        string `json:"date,omitempty" jsonschema:"Publication date, RFC 3339; defaults to now"`
	Description string `json:"description,omitempty" jsonschema:"Short summary"`
	Content     string `json:"content,omitempty" jsonschema:"Article body"`
	CategoryID  string `json:"category_id,omitempty" jsonschema:"Category id (not validated)"`
}

type ArticleOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	AuthorID    string `json:"author_id"`
	EditorID    string `json:"editor_id"`
	Published   bool   `json:"published"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (h *ArticleHandlers) CreateArticle(_ context.Context, request *mcp.CallToolRequest, input CreateArticleInput) (*mcp.CallToolResult, ArticleOutput, error) {
	if input.Title == "" {
		return nil, ArticleOutput{}, fmt.Errorf("title is required")
	}

	ctx := h.callCtx()
	date, err := parseDate(input.Date, ctx.Now)
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	article, err := h.svc.CreateArticle(ctx, models.ArticlePayload{
		ID:          input.ArticleID,
		Title:       input.Title,
		Date:        date,
		Description: input.Description,
		Content:     input.Content,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return nil, ArticleOutput{}, fmt.Errorf("failed to create article: %w", err)
	}

	return nil, articleToOutput(article), nil
}

type UpdateArticleInput struct {
	ArticleID   string `json:"article_id" jsonschema:"Id of the article to update (required)"`
	Title       string `json:"title" jsonschema:"Updated title"`
	Date        string `json:"date,omitempty" jsonschema:"Updated publication date, RFC 3339"`
	Description string `json:"description,omitempty" jsonschema:"Updated summary"`
	Content     string `json:"content,omitempty" jsonschema:"Updated body"`
	Published   bool   `json:"published,omitempty" jsonschema:"Publication status; honored only for editors"`
}

func (h *ArticleHandlers) UpdateArticle(_ context.Context, request *mcp.CallToolRequest, input UpdateArticleInput) (*mcp.CallToolResult, ArticleOutput, error) {
	if input.ArticleID == "" {
		return nil, ArticleOutput{}, fmt.Errorf("article_id is required")
	}

	ctx := h.callCtx()
	date, err := parseDate(input.Date, ctx.Now)
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	article, err := h.svc.UpdateArticle(ctx, models.ArticlePayload{
		ID:          input.ArticleID,
		Title:       input.Title,
		Date:        date,
		Description: input.Description,
		Content:     input.Content,
		Published:   input.Published,
	})
	if err != nil {
		return nil, ArticleOutput{}, fmt.Errorf("failed to update article: %w", err)
	}

	return nil, articleToOutput(article), nil
}

type ListArticlesInput struct{}

type ListArticlesOutput struct {
	Articles []ArticleOutput `json:"articles"`
}

func (h *ArticleHandlers) ListActiveArticles(_ context.Context, request *mcp.CallToolRequest, input ListArticlesInput) (*mcp.CallToolResult, ListArticlesOutput, error) {
	articles, err := h.svc.ActiveArticles()
	if err != nil {
		return nil, ListArticlesOutput{}, fmt.Errorf("failed to list published articles: %w", err)
	}
	return nil, articlesToOutput(articles), nil
}

func (h *ArticleHandlers) ListInactiveArticles(_ context.Context, request *mcp.CallToolRequest, input ListArticlesInput) (*mcp.CallToolResult, ListArticlesOutput, error) {
	articles, err := h.svc.InactiveArticles(h.callCtx())
	if err != nil {
		return nil, ListArticlesOutput{}, fmt.Errorf("failed to list drafts: %w", err)
	}
	return nil, articlesToOutput(articles), nil
}

func (h *ArticleHandlers) ListAllArticles(_ context.Context, request *mcp.CallToolRequest, input ListArticlesInput) (*mcp.CallToolResult, ListArticlesOutput, error) {
	articles, err := h.svc.AllArticles(h.callCtx())
	if err != nil {
		return nil, ListArticlesOutput{}, fmt.Errorf("failed to list articles: %w", err)
	}
	return nil, articlesToOutput(articles), nil
}

type ListByCategoryInput struct {
	CategoryID string `json:"category_id" jsonschema:"Category id to filter by (required)"`
}

func (h *ArticleHandlers) ListActiveArticlesByCategory(_ context.Context, request *mcp.CallToolRequest, input ListByCategoryInput) (*mcp.CallToolResult, ListArticlesOutput, error) {
	if input.CategoryID == "" {
		return nil, ListArticlesOutput{}, fmt.Errorf("category_id is required")
	}

	articles, err := h.svc.ActiveArticlesByCategory(input.CategoryID)
	if err != nil {
		return nil, ListArticlesOutput{}, fmt.Errorf("failed to list articles by category: %w", err)
	}
	return nil, articlesToOutput(articles), nil
}

func (h *ArticleHandlers) ListMyArticles(_ context.Context, request *mcp.CallToolRequest, input ListArticlesInput) (*mcp.CallToolResult, ListArticlesOutput, error) {
	articles, err := h.svc.ArticlesByAuthor(h.callCtx())
	if err != nil {
		return nil, ListArticlesOutput{}, fmt.Errorf("failed to list authored articles: %w", err)
	}
	return nil, articlesToOutput(articles), nil
}

func (h *ArticleHandlers) ListEditedArticles(_ context.Context, request *mcp.CallToolRequest, input ListArticlesInput) (*mcp.CallToolResult, ListArticlesOutput, error) {
	articles, err := h.svc.ArticlesByEditor(h.callCtx())
	if err != nil {
		return nil, ListArticlesOutput{}, fmt.Errorf("failed to list edited articles: %w", err)
	}
	return nil, articlesToOutput(articles), nil
}

func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

func articleToOutput(article *models.Article) ArticleOutput {
	return ArticleOutput{
		ID:          article.ID,
		Title:       article.Title,
		Date:        article.Date.Format(timeFormat),
		Description: article.Description,
		Content:     article.Content,
		CategoryID:  article.CategoryID,
		AuthorID:    string(article.AuthorID),
		EditorID:    string(article.EditorID),
		Published:   article.Published,
		CreatedAt:   article.CreatedAt.Format(timeFormat),
		UpdatedAt:   article.UpdatedAt.Format(timeFormat),
	}
}

func articlesToOutput(articles []models.Article) ListArticlesOutput {
	result := make([]ArticleOutput, len(articles))
	for i := range articles {
		result[i] = articleToOutput(&articles[i])
	}
	return ListArticlesOutput{Articles: result}
}
