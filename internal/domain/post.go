package domain

import "time"

// Post is a published blog article. Slug is unique across all posts.
type Post struct {
	ID          int64
	Title       string
	Content     string
	Excerpt     string
	Category    Category
	Slug        string
	AuthorID    int64
	PublishedAt time.Time
}

// Comment is a reader response attached to a post.
type Comment struct {
	ID        int64
	Content   string
	AuthorID  int64
	PostID    int64
	CreatedAt time.Time
}

// PostFilter narrows a post search. Zero values mean "no constraint";
// the category CategoryAll is treated the same as an empty category.
type PostFilter struct {
	Query    string
	Category Category
}

// HasCategory reports whether the filter constrains by category.
func (f PostFilter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}
