// Package payment talks to Stripe for the assistant unlock payment.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/WillSanton/WebSite/internal/domain"
)

const metadataUserID = "user_id"

// StripeGateway creates and reads Stripe payment intents.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway for secretKey. A nil backends uses the
// live Stripe API.
func NewStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// CreateIntent creates a payment intent tagged with the paying user.
func (g *StripeGateway) CreateIntent(ctx context.Context, userID, amount int64, currency string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataUserID, strconv.FormatInt(userID, 10))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}
	return toDomain(pi), nil
}

// GetIntent reads a payment intent. Unknown ids return domain.ErrNotFound.
func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && (serr.HTTPStatusCode == http.StatusNotFound || serr.Code == stripe.ErrorCodeResourceMissing) {
			return nil, fmt.Errorf("payment intent %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("stripe get payment intent: %w", err)
	}
	return toDomain(pi), nil
}

func toDomain(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	out := &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       domain.PaymentStatus(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}
	if raw, ok := pi.Metadata[metadataUserID]; ok {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			out.UserID = id
		}
	}
	return out
}
