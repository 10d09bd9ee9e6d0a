// ABOUTME: Article lifecycle operations
// ABOUTME: Creation, role-gated editing, and publication status
package core

import (
	"errors"
	"fmt"

	"github.com/harperreed/newsdesk/models"
	"github.com/harperreed/newsdesk/store"
)

// CreateArticle inserts a draft for the caller, who must hold an active
// account. The caller becomes both author and editor of record until a real
// editor claims the article.
func (s *Service) CreateArticle(ctx Context, payload models.ArticlePayload) (*models.Article, error) {
	if _, err := s.RequireActiveUser(ctx.Caller); err != nil {
		return nil, err
	}

	id := payload.ID
	if id == "" {
		id = s.newArticleID()
	}

	article := &models.Article{
		ID:          id,
		Title:       payload.Title,
		Date:        payload.Date,
		Description: payload.Description,
		Content:     payload.Content,
		CategoryID:  payload.CategoryID,
		AuthorID:    ctx.Caller,
		EditorID:    ctx.Caller,
		Published:   false,
		CreatedAt:   ctx.Now,
		UpdatedAt:   ctx.Now,
	}
	if err := s.articles.Insert(id, article); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: article %s already exists", ErrBadRequest, id)
		}
		return nil, storeErr(err)
	}
	return article, nil
}

// UpdateArticle applies payload to an existing article under the role rules:
// authors may edit their own article only until an editor claims it, and never
// change publication status; editors claim the article and control both
// editorship and status.
func (s *Service) UpdateArticle(ctx Context, payload models.ArticlePayload) (*models.Article, error) {
	article, err := s.articles.Get(payload.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	if article == nil {
		return nil, fmt.Errorf("%w: article %s", ErrNotFound, payload.ID)
	}

	user, err := s.RequireRegisteredUser(ctx.Caller)
	if err != nil {
		return nil, err
	}

	switch {
	case user.Role == models.RoleEditor:
		article.EditorID = ctx.Caller
		article.Published = payload.Published
	case article.UnderReview():
		return nil, fmt.Errorf("%w: article %s is under editor review", ErrForbidden, article.ID)
	case ctx.Caller != article.AuthorID:
		return nil, fmt.Errorf("%w: only the author may edit article %s", ErrForbidden, article.ID)
	}

	article.Title = payload.Title
	article.Date = payload.Date
	article.Description = payload.Description
	article.Content = payload.Content
	article.UpdatedAt = ctx.Now
	if err := s.articles.Put(article.ID, article); err != nil {
		return nil, storeErr(err)
	}
	return article, nil
}
