package rest

import (
	"time"

	"github.com/WillSanton/WebSite/internal/domain"
)

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

type postResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Slug        string    `json:"slug"`
	AuthorID    int64     `json:"authorId"`
	PublishedAt time.Time `json:"publishedAt"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		Category:    string(p.Category),
		Slug:        p.Slug,
		AuthorID:    p.AuthorID,
		PublishedAt: p.PublishedAt,
	}
}

func toPostResponses(posts []domain.Post) []postResponse {
	out := make([]postResponse, len(posts))
	for i := range posts {
		out[i] = toPostResponse(&posts[i])
	}
	return out
}

type commentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	PostID    int64     `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentResponses(comments []domain.Comment) []commentResponse {
	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	return out
}

type assistantResponse struct {
	ID            int64                `json:"id"`
	UserID        int64                `json:"userId"`
	Name          string               `json:"name"`
	Customization domain.Customization `json:"customization"`
	Active        bool                 `json:"active"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// toAssistantResponse returns nil for a missing assistant so it encodes as null.
func toAssistantResponse(a *domain.WitchAssistant) *assistantResponse {
	if a == nil {
		return nil
	}
	return &assistantResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Name:          a.Name,
		Customization: a.Customization,
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
	}
}
