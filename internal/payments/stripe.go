package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/logger"
)

// StripeClient implements Provider against the Stripe REST API using
// form-encoded requests. Only the handful of endpoints the billing engine
// needs are covered.
type StripeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewStripeClient creates a new Stripe client
func NewStripeClient(apiKey, baseURL string) *StripeClient {
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	return &StripeClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type stripeCustomer struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	InvoiceSettings struct {
		DefaultPaymentMethod string `json:"default_payment_method"`
	} `json:"invoice_settings"`
}

type stripePaymentMethod struct {
	ID   string `json:"id"`
	Card struct {
		Brand    string `json:"brand"`
		Last4    string `json:"last4"`
		ExpMonth int    `json:"exp_month"`
		ExpYear  int    `json:"exp_year"`
	} `json:"card"`
}

type stripePaymentMethodList struct {
	Data []stripePaymentMethod `json:"data"`
}

type stripeSetupIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type stripeCharge struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Refunded    bool   `json:"refunded"`
}

type stripeChargeList struct {
	Data []stripeCharge `json:"data"`
}

// CreateCustomer creates a customer record for an organization
func (c *StripeClient) CreateCustomer(ctx context.Context, name, email string) (*Customer, error) {
	form := url.Values{}
	form.Set("name", name)
	if email != "" {
		form.Set("email", email)
	}

	var resp stripeCustomer
	if err := c.postForm(ctx, "/v1/customers", form, &resp); err != nil {
		return nil, apperrors.NewExternalProviderError("create customer", err)
	}
	return &Customer{ID: resp.ID, Name: resp.Name, Email: resp.Email}, nil
}

// ListPaymentMethods lists the customer's cards and marks the default one
func (c *StripeClient) ListPaymentMethods(ctx context.Context, customerID string) ([]PaymentMethod, error) {
	var customer stripeCustomer
	if err := c.getJSON(ctx, "/v1/customers/"+customerID, &customer); err != nil {
		return nil, apperrors.NewExternalProviderError("get customer", err)
	}

	query := url.Values{}
	query.Set("customer", customerID)
	query.Set("type", "card")
	var list stripePaymentMethodList
	if err := c.getJSON(ctx, "/v1/payment_methods?"+query.Encode(), &list); err != nil {
		return nil, apperrors.NewExternalProviderError("list payment methods", err)
	}

	methods := make([]PaymentMethod, len(list.Data))
	for i, pm := range list.Data {
		methods[i] = PaymentMethod{
			ID:        pm.ID,
			Brand:     pm.Card.Brand,
			Last4:     pm.Card.Last4,
			ExpMonth:  pm.Card.ExpMonth,
			ExpYear:   pm.Card.ExpYear,
			IsDefault: pm.ID == customer.InvoiceSettings.DefaultPaymentMethod,
		}
	}
	return methods, nil
}

// CreateSetupIntent starts card collection for the customer
func (c *StripeClient) CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("usage", "off_session")

	var resp stripeSetupIntent
	if err := c.postForm(ctx, "/v1/setup_intents", form, &resp); err != nil {
		return nil, apperrors.NewExternalProviderError("create setup intent", err)
	}
	return &SetupIntent{ID: resp.ID, ClientSecret: resp.ClientSecret}, nil
}

// AttachPaymentMethod attaches a collected card to the customer
func (c *StripeClient) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	form := url.Values{}
	form.Set("customer", customerID)
	if err := c.postForm(ctx, "/v1/payment_methods/"+paymentMethodID+"/attach", form, nil); err != nil {
		return apperrors.NewExternalProviderError("attach payment method", err)
	}
	return nil
}

// DetachPaymentMethod removes a card from its customer
func (c *StripeClient) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	if err := c.postForm(ctx, "/v1/payment_methods/"+paymentMethodID+"/detach", url.Values{}, nil); err != nil {
		return apperrors.NewExternalProviderError("detach payment method", err)
	}
	return nil
}

// SetDefaultPaymentMethod marks a card as the customer's default
func (c *StripeClient) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	form := url.Values{}
	form.Set("invoice_settings[default_payment_method]", paymentMethodID)
	if err := c.postForm(ctx, "/v1/customers/"+customerID, form, nil); err != nil {
		return apperrors.NewExternalProviderError("set default payment method", err)
	}
	return nil
}

// UpdateAddress updates the customer's billing address
func (c *StripeClient) UpdateAddress(ctx context.Context, customerID string, address Address) error {
	form := url.Values{}
	form.Set("address[line1]", address.Line1)
	if address.Line2 != "" {
		form.Set("address[line2]", address.Line2)
	}
	form.Set("address[city]", address.City)
	if address.State != "" {
		form.Set("address[state]", address.State)
	}
	form.Set("address[postal_code]", address.PostalCode)
	form.Set("address[country]", address.Country)
	if err := c.postForm(ctx, "/v1/customers/"+customerID, form, nil); err != nil {
		return apperrors.NewExternalProviderError("update address", err)
	}
	return nil
}

// CreateCharge charges the customer's default payment method
func (c *StripeClient) CreateCharge(ctx context.Context, customerID string, amountCents int64, currency, description string) (*Charge, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	if description != "" {
		form.Set("description", description)
	}

	var resp stripeCharge
	if err := c.postForm(ctx, "/v1/charges", form, &resp); err != nil {
		return nil, apperrors.NewExternalProviderError("create charge", err)
	}
	return &Charge{ID: resp.ID, AmountCents: resp.Amount, Currency: resp.Currency, Status: resp.Status}, nil
}

// FindCharge looks up the customer's most recent charge carrying the given
// description. Returns (nil, nil) when no unrefunded match exists.
func (c *StripeClient) FindCharge(ctx context.Context, customerID, description string) (*Charge, error) {
	query := url.Values{}
	query.Set("customer", customerID)
	query.Set("limit", "100")

	var list stripeChargeList
	if err := c.getJSON(ctx, "/v1/charges?"+query.Encode(), &list); err != nil {
		return nil, apperrors.NewExternalProviderError("list charges", err)
	}
	for _, ch := range list.Data {
		if ch.Description == description && !ch.Refunded {
			return &Charge{
				ID:          ch.ID,
				AmountCents: ch.Amount,
				Currency:    ch.Currency,
				Status:      ch.Status,
				Description: ch.Description,
			}, nil
		}
	}
	return nil, nil
}

// RefundCharge refunds a charge in full. Used by saga compensation when job
// creation fails after a successful charge.
func (c *StripeClient) RefundCharge(ctx context.Context, chargeID string) error {
	form := url.Values{}
	form.Set("charge", chargeID)
	if err := c.postForm(ctx, "/v1/refunds", form, nil); err != nil {
		return apperrors.NewExternalProviderError("refund charge", err)
	}
	return nil
}

// postForm performs an authenticated form POST and decodes JSON into out when
// out is non-nil
func (c *StripeClient) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// getJSON performs an authenticated GET and decodes JSON into out
func (c *StripeClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	return c.do(req, out)
}

func (c *StripeClient) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		logger.New().WithField("status", resp.StatusCode).
			Warnf("stripe request %s %s rejected: %s", req.Method, req.URL.Path, string(body))
		return fmt.Errorf("stripe request failed: status=%d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode stripe response: %w", err)
	}
	return nil
}
