package assistant

import (
	"strings"
	"unicode/utf8"

	"github.com/WillSanton/WebSite/internal/domain"
)

const maxNameLen = 80

// UpdateInput holds a partial assistant update. Nil fields are left unchanged;
// a present customization replaces the stored one wholesale.
type UpdateInput struct {
	Name          *string
	Customization *domain.Customization
	Active        *bool
}

// Validate validates and normalizes the update input.
func (i *UpdateInput) Validate() error {
	if i.Name == nil && i.Customization == nil && i.Active == nil {
		return domain.Invalid("body", "at least one field is required")
	}

	var errs domain.FieldErrors

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		i.Name = &name
		switch {
		case name == "":
			errs.Add("name", "required")
		case utf8.RuneCountInString(name) > maxNameLen:
			errs.Add("name", "must be at most 80 characters")
		}
	}

	if i.Customization != nil {
		i.Customization.Normalize()
		errs.Merge(i.Customization.Validate("customization"))
	}

	return errs.Err()
}

func (i UpdateInput) patch() domain.AssistantPatch {
	return domain.AssistantPatch{
		Name:          i.Name,
		Customization: i.Customization,
		Active:        i.Active,
	}
}
