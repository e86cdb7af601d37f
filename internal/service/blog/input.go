package blog

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/WillSanton/WebSite/internal/domain"
)

const maxCommentLen = 5000

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// CreatePostInput holds the client-supplied post fields. Id, author and
// publish time are assigned by the server.
type CreatePostInput struct {
	Title    string
	Content  string
	Excerpt  string
	Category domain.Category
	Slug     string
}

// Validate validates and trims the create post input.
func (i *CreatePostInput) Validate() error {
	var errs domain.FieldErrors

	i.Title = strings.TrimSpace(i.Title)
	i.Excerpt = strings.TrimSpace(i.Excerpt)
	i.Slug = strings.TrimSpace(i.Slug)

	if i.Title == "" {
		errs.Add("title", "required")
	}
	if strings.TrimSpace(i.Content) == "" {
		errs.Add("content", "required")
	}
	if i.Excerpt == "" {
		errs.Add("excerpt", "required")
	}

	switch {
	case i.Category == "":
		errs.Add("category", "required")
	case !i.Category.IsValid():
		errs.Add("category", "invalid category")
	}

	switch {
	case i.Slug == "":
		errs.Add("slug", "required")
	case !slugRe.MatchString(i.Slug):
		errs.Add("slug", "must contain only lowercase letters, digits and hyphens")
	}

	return errs.Err()
}

// CreateCommentInput holds the client-supplied comment fields.
type CreateCommentInput struct {
	Content string
}

// Validate validates and trims the create comment input.
func (i *CreateCommentInput) Validate() error {
	i.Content = strings.TrimSpace(i.Content)

	switch {
	case i.Content == "":
		return domain.Invalid("content", "required")
	case utf8.RuneCountInString(i.Content) > maxCommentLen:
		return domain.Invalid("content", "must be at most 5000 characters")
	}
	return nil
}

// SearchInput holds optional search filters. Category "_all" or empty means
// no category filter; an unknown category matches nothing.
type SearchInput struct {
	Query    string
	Category domain.Category
}
