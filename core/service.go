// ABOUTME: Service wiring for the content store
// ABOUTME: Holds the four entity tables and id generation hooks
package core

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/harperreed/newsdesk/models"
	"github.com/harperreed/newsdesk/store"
)

// Context carries the host-supplied caller identity and timestamp for one
// invocation. The hosting environment serializes invocations, so operations
// never see concurrent mutation.
type Context struct {
	Caller models.Identity
	Now    time.Time
}

// Service implements every content store operation over four independent
// key-value tables. No operation spans tables transactionally; every failure
// path checks preconditions before writing anything.
type Service struct {
	owners     *store.Table[models.Owner]
	users      *store.Table[models.User]
	articles   *store.Table[models.Article]
	categories *store.Table[models.Category]

	newArticleID  func() string
	newCategoryID func() string
}

func NewService(kv store.KV) *Service {
	return &Service{
		owners:        store.NewTable[models.Owner](kv, "owner/"),
		users:         store.NewTable[models.User](kv, "user/"),
		articles:      store.NewTable[models.Article](kv, "article/"),
		categories:    store.NewTable[models.Category](kv, "category/"),
		newArticleID:  NewArticleID,
		newCategoryID: func() string { return uuid.New().String() },
	}
}

// NewArticleID returns a fresh lexicographically sortable article id, so
// store iteration order matches creation order.
func NewArticleID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
