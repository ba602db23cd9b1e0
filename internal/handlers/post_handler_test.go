package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unlinked/backend/internal/models"
	"github.com/unlinked/backend/internal/repositories"
	"github.com/unlinked/backend/internal/services"
)

type memPostRepo struct {
	posts  []models.Post
	incred []models.ReactionType
}

func (r *memPostRepo) Create(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	r.posts = append(r.posts, *post)
	return nil
}

func (r *memPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID == id {
			p := r.posts[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrPostNotFound
}

func (r *memPostRepo) List(ctx context.Context, q repositories.ListPostsQuery) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range r.posts {
		if !p.IsPrivate {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPostRepo) IncrementReactionCount(ctx context.Context, postID primitive.ObjectID, reactionType models.ReactionType) error {
	r.incred = append(r.incred, reactionType)
	return nil
}

func newTestPostHandler(repo *memPostRepo) *PostHandler {
	limits := services.Limits{MaxContentLength: 2000, MaxTagsPerPost: 10, DefaultPageSize: 20, MaxPageSize: 100}
	return NewPostHandler(services.NewPostService(repo, limits))
}

func doRequest(t *testing.T, method, target, body string, handler echo.HandlerFunc, pathParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range pathParams {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	err := handler(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCreatePostSuccess(t *testing.T) {
	repo := &memPostRepo{}
	h := newTestPostHandler(repo)

	rec := doRequest(t, http.MethodPost, "/api/v1/posts",
		`{"content":"first day at a new job and already lost","tags":["NewJob"]}`,
		h.CreatePost, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var post models.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if post.ID.IsZero() {
		t.Error("response post has no id")
	}
	if post.IsFlagged {
		t.Error("is_flagged = true, want false")
	}
	if len(post.ReactionCounts) != 3 {
		t.Errorf("reaction_counts = %v, want three zeroed keys", post.ReactionCounts)
	}
	if post.Tags[0] != "newjob" {
		t.Errorf("tags = %v, want normalized lowercase", post.Tags)
	}
}

func TestCreatePostRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing content", `{"tags":["a"]}`},
		{"content too long", `{"content":"` + strings.Repeat("a", 2001) + `"}`},
		{"malformed json", `{"content":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestPostHandler(&memPostRepo{})
			rec := doRequest(t, http.MethodPost, "/api/v1/posts", tt.body, h.CreatePost, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGetPostByID(t *testing.T) {
	repo := &memPostRepo{}
	h := newTestPostHandler(repo)

	post := models.Post{Content: "hi", CreatedAt: time.Now().UTC(), ReactionCounts: models.NewReactionCounts()}
	if err := repo.Create(context.Background(), &post); err != nil {
		t.Fatal(err)
	}

	rec := doRequest(t, http.MethodGet, "/api/v1/posts/"+post.ID.Hex(), "",
		h.GetPost, map[string]string{"id": post.ID.Hex()})
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	rec = doRequest(t, http.MethodGet, "/api/v1/posts/not-an-id", "",
		h.GetPost, map[string]string{"id": "not-an-id"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", rec.Code)
	}

	absent := primitive.NewObjectID().Hex()
	rec = doRequest(t, http.MethodGet, "/api/v1/posts/"+absent, "",
		h.GetPost, map[string]string{"id": absent})
	if rec.Code != http.StatusNotFound {
		t.Errorf("absent id status = %d, want 404", rec.Code)
	}
}

func TestGetPostsQueryValidation(t *testing.T) {
	h := newTestPostHandler(&memPostRepo{})

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"defaults", "/api/v1/posts", http.StatusOK},
		{"non-integer limit", "/api/v1/posts?limit=abc", http.StatusBadRequest},
		{"non-integer skip", "/api/v1/posts?skip=abc", http.StatusBadRequest},
		{"limit above max", "/api/v1/posts?limit=101", http.StatusBadRequest},
		{"explicit zero limit", "/api/v1/posts?limit=0", http.StatusBadRequest},
		{"negative limit", "/api/v1/posts?limit=-5", http.StatusBadRequest},
		{"negative skip", "/api/v1/posts?skip=-1", http.StatusBadRequest},
		{"tag too long", "/api/v1/posts?tag=" + strings.Repeat("x", 51), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, http.MethodGet, tt.target, "", h.GetPosts, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestGetPostsExcludesPrivate(t *testing.T) {
	repo := &memPostRepo{}
	h := newTestPostHandler(repo)

	pub := models.Post{Content: "public", CreatedAt: time.Now().UTC()}
	priv := models.Post{Content: "private", IsPrivate: true, CreatedAt: time.Now().UTC()}
	_ = repo.Create(context.Background(), &pub)
	_ = repo.Create(context.Background(), &priv)

	rec := doRequest(t, http.MethodGet, "/api/v1/posts", "", h.GetPosts, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var posts []models.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(posts) != 1 || posts[0].Content != "public" {
		t.Errorf("posts = %v, want only the public post", posts)
	}
}
