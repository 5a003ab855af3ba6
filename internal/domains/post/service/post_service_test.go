package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demo-api/internal/domains/post"
	postrepo "demo-api/internal/domains/post/repository"
	"demo-api/internal/domains/user"
	userrepo "demo-api/internal/domains/user/repository"
	"demo-api/internal/shared/apperror"
	"demo-api/internal/shared/query"
	"demo-api/internal/store"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

type fixture struct {
	svc   post.Service
	posts post.Repository
	users user.Repository
	now   *time.Time
	ada   *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	seq := 0
	opts := store.Options{
		Now: func() time.Time { return now },
		NewID: func() string {
			seq++
			return fmt.Sprintf("id%d", seq)
		},
	}
	users := userrepo.NewMemoryRepository(opts)
	posts := postrepo.NewMemoryRepository(opts)

	ada, err := users.Create(context.Background(), user.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	return &fixture{
		svc:   NewPostService(posts, users),
		posts: posts,
		users: users,
		now:   &now,
		ada:   ada,
	}
}

func (f *fixture) create(t *testing.T, title string, published bool) *post.Post {
	t.Helper()
	*f.now = f.now.Add(time.Minute)
	p, err := f.svc.Create(context.Background(), post.CreatePostRequest{
		Title:     title,
		Content:   "Body of " + title,
		AuthorID:  f.ada.ID,
		Published: boolPtr(published),
	})
	require.NoError(t, err)
	return p
}

func TestPostService_Create(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.Create(context.Background(), post.CreatePostRequest{
		Title:    "  Hello  ",
		Content:  "World",
		AuthorID: f.ada.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello", p.Title)
	assert.False(t, p.Published)
	assert.Equal(t, f.ada.ID, p.AuthorID)
	assert.Equal(t, *f.now, p.CreatedAt)
}

func TestPostService_CreateUnknownAuthor(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Orphan", Content: "x", AuthorID: "missing",
	})

	assert.ErrorIs(t, err, post.ErrAuthorNotFound)
	all, _ := f.posts.FindAll(context.Background())
	assert.Empty(t, all)
}

func TestPostService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		req       post.CreatePostRequest
		wantField string
	}{
		{"missing title", post.CreatePostRequest{Content: "c", AuthorID: "a"}, "title"},
		{"title too long", post.CreatePostRequest{Title: string(make([]rune, 201)), Content: "c", AuthorID: "a"}, "title"},
		{"missing content", post.CreatePostRequest{Title: "t", AuthorID: "a"}, "content"},
		{"missing author", post.CreatePostRequest{Title: "t", Content: "c"}, "authorId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.Create(context.Background(), tt.req)

			appErr, ok := apperror.As(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Contains(t, appErr.Details, tt.wantField)
		})
	}
}

func TestPostService_ListFilters(t *testing.T) {
	f := newFixture(t)
	f.create(t, "Go generics", true)
	f.create(t, "Draft notes", false)
	newest := f.create(t, "More Go", true)

	ctx := context.Background()

	published, meta, err := f.svc.List(ctx, query.ListQuery{Pagination: query.Pagination{Page: 1, Limit: 10}, Published: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, published, 2)
	assert.Equal(t, newest.ID, published[0].ID)
	assert.Equal(t, 2, meta.Total)

	drafts, _, err := f.svc.List(ctx, query.ListQuery{Pagination: query.Pagination{Page: 1, Limit: 10}, Published: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Draft notes", drafts[0].Title)

	matches, _, err := f.svc.List(ctx, query.ListQuery{Pagination: query.Pagination{Page: 1, Limit: 10}, Q: "go"})
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	// "notes" only appears in the draft
	combined, _, err := f.svc.List(ctx, query.ListQuery{Pagination: query.Pagination{Page: 1, Limit: 10}, Q: "notes", Published: boolPtr(true)})
	require.NoError(t, err)
	assert.Empty(t, combined)
}

func TestPostService_ListByAuthor(t *testing.T) {
	f := newFixture(t)
	f.create(t, "First", true)
	f.create(t, "Second", false)

	ctx := context.Background()
	other, err := f.users.Create(ctx, user.User{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	posts, meta, err := f.svc.ListByAuthor(ctx, f.ada.ID, query.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "Second", posts[0].Title)
	assert.Equal(t, 2, meta.Total)

	none, _, err := f.svc.ListByAuthor(ctx, other.ID, query.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, _, err = f.svc.ListByAuthor(ctx, "missing", query.Pagination{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestPostService_GetByID(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, "Hello", true)
	ctx := context.Background()

	detail, err := f.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Author)
	assert.Equal(t, "Ada", detail.Author.Name)

	// the author reference dangles after the user is deleted
	require.NoError(t, f.users.Delete(ctx, f.ada.ID))
	detail, err = f.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Author)

	_, err = f.svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestPostService_Update(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, "Hello", false)
	*f.now = f.now.Add(time.Hour)

	updated, err := f.svc.Update(context.Background(), p.ID, post.UpdatePostRequest{
		Title:     strPtr("Hello again"),
		Published: boolPtr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, p.Content, updated.Content)
	assert.True(t, updated.Published)
	assert.Equal(t, p.AuthorID, updated.AuthorID)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(p.UpdatedAt))
}

func TestPostService_UpdateErrors(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, "Hello", false)

	_, err := f.svc.Update(context.Background(), p.ID, post.UpdatePostRequest{Title: strPtr("  ")})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)

	_, err = f.svc.Update(context.Background(), "missing", post.UpdatePostRequest{Published: boolPtr(true)})
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestPostService_Delete(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, "Hello", false)
	ctx := context.Background()

	require.NoError(t, f.svc.Delete(ctx, p.ID))
	_, err := f.svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, p.ID), post.ErrPostNotFound)
}
