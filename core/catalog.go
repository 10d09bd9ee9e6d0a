// ABOUTME: Category management and article listing queries
// ABOUTME: Read-throughs over the entity tables
package core

import (
	"fmt"

	"github.com/harperreed/newsdesk/models"
)

// CreateCategory inserts a category with a generated id. Owner only.
func (s *Service) CreateCategory(ctx Context, name string) (*models.Category, error) {
	if err := s.RequireOwner(ctx.Caller); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:   s.newCategoryID(),
		Name: name,
	}
	if err := s.categories.Insert(category.ID, category); err != nil {
		return nil, storeErr(err)
	}
	return category, nil
}

// AllCategories returns every category. No restriction.
func (s *Service) AllCategories() ([]models.Category, error) {
	categories, err := s.categories.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return categories, nil
}

// ActiveArticles returns every published article. No restriction.
func (s *Service) ActiveArticles() ([]models.Article, error) {
	return s.filterArticles(func(a *models.Article) bool {
		return a.Published
	})
}

// InactiveArticles returns every draft. Editors only.
func (s *Service) InactiveArticles(ctx Context) ([]models.Article, error) {
	user, err := s.RequireRegisteredUser(ctx.Caller)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleEditor {
		return nil, fmt.Errorf("%w: editor role required", ErrForbidden)
	}
	return s.filterArticles(func(a *models.Article) bool {
		return !a.Published
	})
}

// AllArticles returns every article regardless of status. Owner only.
func (s *Service) AllArticles(ctx Context) ([]models.Article, error) {
	if err := s.RequireOwner(ctx.Caller); err != nil {
		return nil, err
	}
	articles, err := s.articles.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return articles, nil
}

// ActiveArticlesByCategory returns published articles in the given category.
// The category id is not validated; unknown ids yield an empty list.
func (s *Service) ActiveArticlesByCategory(categoryID string) ([]models.Article, error) {
	return s.filterArticles(func(a *models.Article) bool {
		return a.Published && a.CategoryID == categoryID
	})
}

// ArticlesByAuthor returns the caller's own articles.
func (s *Service) ArticlesByAuthor(ctx Context) ([]models.Article, error) {
	if _, err := s.RequireRegisteredUser(ctx.Caller); err != nil {
		return nil, err
	}
	return s.filterArticles(func(a *models.Article) bool {
		return a.AuthorID == ctx.Caller
	})
}

// ArticlesByEditor returns articles where the caller is the editor of record.
func (s *Service) ArticlesByEditor(ctx Context) ([]models.Article, error) {
	if _, err := s.RequireRegisteredUser(ctx.Caller); err != nil {
		return nil, err
	}
	return s.filterArticles(func(a *models.Article) bool {
		return a.EditorID == ctx.Caller
	})
}

func (s *Service) filterArticles(keep func(*models.Article) bool) ([]models.Article, error) {
	all, err := s.articles.List()
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]models.Article, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}
