package domain

import (
	"fmt"
	"time"
)

// DefaultAssistantName is given to assistants created by the unlock flow.
const DefaultAssistantName = "Mystic Guide"

// WitchAssistant is the per-user familiar unlocked by payment.
type WitchAssistant struct {
	ID            int64
	UserID        int64
	Name          string
	Customization Customization
	Active        bool
	CreatedAt     time.Time
}

// Customization is stored as a single JSON document and replaced wholesale.
type Customization struct {
	Appearance Appearance `json:"appearance"`
}

type Appearance struct {
	Race        FamiliarRace `json:"race"`
	Accessories Accessories  `json:"accessories"`
}

type Accessories struct {
	Head *HeadAccessory  `json:"head"`
	Hand *HandAccessory  `json:"hand"`
	Body []BodyAccessory `json:"body"`
}

// DefaultCustomization is a cat with no accessories.
func DefaultCustomization() Customization {
	return Customization{
		Appearance: Appearance{
			Race:        FamiliarCat,
			Accessories: Accessories{Body: []BodyAccessory{}},
		},
	}
}

// Normalize removes duplicate body accessories, keeping first occurrence
// order, and replaces a nil body list with an empty one.
func (c *Customization) Normalize() {
	body := c.Appearance.Accessories.Body
	seen := make(map[BodyAccessory]struct{}, len(body))
	out := make([]BodyAccessory, 0, len(body))
	for _, b := range body {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	c.Appearance.Accessories.Body = out
}

// Validate checks every enum of the document. Field paths are prefixed
// with prefix (e.g. "customization").
func (c Customization) Validate(prefix string) []FieldError {
	var errs []FieldError
	base := prefix + ".appearance"

	if !c.Appearance.Race.IsValid() {
		errs = append(errs, FieldError{Field: base + ".race", Message: "invalid race"})
	}

	acc := c.Appearance.Accessories
	if acc.Head != nil && !acc.Head.IsValid() {
		errs = append(errs, FieldError{Field: base + ".accessories.head", Message: "invalid head accessory"})
	}
	if acc.Hand != nil && !acc.Hand.IsValid() {
		errs = append(errs, FieldError{Field: base + ".accessories.hand", Message: "invalid hand accessory"})
	}
	for i, b := range acc.Body {
		if !b.IsValid() {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s.accessories.body.%d", base, i),
				Message: "invalid body accessory",
			})
		}
	}

	return errs
}

// AssistantPatch carries the fields of a partial assistant update.
// Nil fields are left unchanged.
type AssistantPatch struct {
	Name          *string
	Customization *Customization
	Active        *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p AssistantPatch) IsEmpty() bool {
	return p.Name == nil && p.Customization == nil && p.Active == nil
}

// PaymentIntent is a provider payment intent for the assistant unlock.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       PaymentStatus
	UserID       int64
	Amount       int64
	Currency     string
}
