package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/service/blog"
)

// blogService defines the minimal interface needed by PostHandler.
type blogService interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	SearchPosts(ctx context.Context, input blog.SearchInput) ([]domain.Post, error)
	GetPost(ctx context.Context, slug string) (*domain.Post, error)
	CreatePost(ctx context.Context, input blog.CreatePostInput) (*domain.Post, error)
	ListComments(ctx context.Context, slug string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, slug string, input blog.CreateCommentInput) (*domain.Comment, error)
}

// PostHandler serves post and comment endpoints.
type PostHandler struct {
	svc      blogService
	maxBytes int64
	log      *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc blogService, maxBytes int64, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "post")}
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// List handles GET /api/posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponses(posts))
}

// Search handles GET /api/posts/search?query=&category=.
func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	posts, err := h.svc.SearchPosts(r.Context(), blog.SearchInput{
		Query:    q.Get("query"),
		Category: domain.Category(q.Get("category")),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponses(posts))
}

// Get handles GET /api/posts/{slug}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.GetPost(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(post))
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeJSON(w, r, h.maxBytes, &req) {
		return
	}

	post, err := h.svc.CreatePost(r.Context(), blog.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: domain.Category(req.Category),
		Slug:     req.Slug,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

// ListComments handles GET /api/posts/{slug}/comments.
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListComments(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponses(comments))
}

// CreateComment handles POST /api/posts/{slug}/comments.
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !decodeJSON(w, r, h.maxBytes, &req) {
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), mux.Vars(r)["slug"], blog.CreateCommentInput{
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *PostHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleServiceError(w, r, h.log, err, "Slug already exists")
}
