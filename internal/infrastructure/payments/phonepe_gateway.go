package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"plantcart/internal/usecase/interfaces"
)

var (
	ErrMissingPhonePeCredentials = errors.New("missing PHONEPE_CLIENT_ID / PHONEPE_CLIENT_SECRET")
	// ErrPaymentAuthFailed is the distinct "payment system authentication
	// failed" condition raised when the provider token fetch is rejected.
	ErrPaymentAuthFailed = errors.New("payment system authentication failed")
)

const (
	defaultHostURL       = "https://api-preprod.phonepe.com/apis/pg-sandbox"
	defaultClientVersion = "1"
	requestTimeout       = 15 * time.Second
)

// PhonePeGateway drives the PhonePe Standard Checkout V2 API: OAuth
// client-credential token, hosted checkout session, and order status poll.
// Requests authenticate with the provider's "O-Bearer" scheme.

type PhonePeGateway struct {
	hostURL       string
	clientID      string
	clientSecret  string
	clientVersion string
	httpClient    *http.Client
	tokens        *TokenCache
}

var _ interfaces.IPaymentGateway = (*PhonePeGateway)(nil)

// NewPhonePeGateway builds a gateway from environment configuration. Missing
// credentials return ErrMissingPhonePeCredentials; the caller decides whether
// that means mock mode or a hard failure.
func NewPhonePeGateway() (*PhonePeGateway, error) {
	clientID := strings.TrimSpace(os.Getenv("PHONEPE_CLIENT_ID"))
	clientSecret := strings.TrimSpace(os.Getenv("PHONEPE_CLIENT_SECRET"))
	if clientID == "" || clientSecret == "" {
		log.Printf("[phonepe][gateway] credentials missing; gateway not configured")
		return nil, ErrMissingPhonePeCredentials
	}

	g := &PhonePeGateway{
		hostURL:       getenvDefault("PHONEPE_HOST_URL", defaultHostURL),
		clientID:      clientID,
		clientSecret:  clientSecret,
		clientVersion: getenvDefault("PHONEPE_CLIENT_VERSION", defaultClientVersion),
		httpClient:    &http.Client{Timeout: requestTimeout},
	}
	g.tokens = NewTokenCache(g.fetchToken)
	log.Printf("[phonepe][gateway] client initialized host=%s", g.hostURL)
	return g, nil
}

func (g *PhonePeGateway) fetchToken(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("client_id", g.clientID)
	form.Set("client_version", g.clientVersion)
	form.Set("client_secret", g.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.hostURL+"/v1/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[phonepe][gateway] token request failed err=%v", err)
		return "", 0, fmt.Errorf("%w: %v", ErrPaymentAuthFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[phonepe][gateway] token request rejected status=%d body=%s", resp.StatusCode, body)
		return "", 0, fmt.Errorf("%w: status %d", ErrPaymentAuthFailed, resp.StatusCode)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		log.Printf("[phonepe][gateway] token response malformed err=%v", err)
		return "", 0, fmt.Errorf("%w: malformed token response", ErrPaymentAuthFailed)
	}
	return tok.AccessToken, time.Duration(tok.ExpiresIn) * time.Second, nil
}

func (g *PhonePeGateway) CreateCheckout(ctx context.Context, orderID string, amountMinor int64, redirectURL string) (interfaces.CheckoutSession, error) {
	token, err := g.tokens.Get(ctx)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	payload := map[string]any{
		"merchantOrderId": orderID,
		"amount":          amountMinor,
		"paymentFlow": map[string]any{
			"type": "PG_CHECKOUT",
			"merchantUrls": map[string]any{
				"redirectUrl": redirectURL,
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[phonepe][gateway] create checkout order_id=%s amount_minor=%d", orderID, amountMinor)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.hostURL+"/checkout/v2/pay", bytes.NewReader(body))
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "O-Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[phonepe][gateway] create checkout failed order_id=%s err=%v", orderID, err)
		return interfaces.CheckoutSession{}, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		g.tokens.Invalidate()
		log.Printf("[phonepe][gateway] create checkout unauthorized order_id=%s", orderID)
		return interfaces.CheckoutSession{}, fmt.Errorf("%w: checkout rejected", ErrPaymentAuthFailed)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[phonepe][gateway] create checkout error order_id=%s status=%d body=%s", orderID, resp.StatusCode, respBody)
		return interfaces.CheckoutSession{}, fmt.Errorf("phonepe checkout failed: status %d: %s", resp.StatusCode, respBody)
	}

	var out struct {
		State       string `json:"state"`
		RedirectURL string `json:"redirectUrl"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil || out.RedirectURL == "" {
		log.Printf("[phonepe][gateway] create checkout response missing redirectUrl order_id=%s body=%s", orderID, respBody)
		return interfaces.CheckoutSession{}, fmt.Errorf("phonepe checkout failed: no redirect url in response")
	}

	log.Printf("[phonepe][gateway] create checkout success order_id=%s state=%s", orderID, out.State)
	return interfaces.CheckoutSession{OrderID: orderID, PaymentURL: out.RedirectURL}, nil
}

func (g *PhonePeGateway) CheckStatus(ctx context.Context, orderID string) (interfaces.PaymentState, error) {
	token, err := g.tokens.Get(ctx)
	if err != nil {
		return interfaces.PaymentState{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.hostURL+"/checkout/v2/order/"+url.PathEscape(orderID)+"/status", nil)
	if err != nil {
		return interfaces.PaymentState{}, err
	}
	req.Header.Set("Authorization", "O-Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[phonepe][gateway] status check failed order_id=%s err=%v", orderID, err)
		return interfaces.PaymentState{}, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		g.tokens.Invalidate()
		return interfaces.PaymentState{}, fmt.Errorf("%w: status check rejected", ErrPaymentAuthFailed)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[phonepe][gateway] status check error order_id=%s status=%d body=%s", orderID, resp.StatusCode, respBody)
		return interfaces.PaymentState{}, fmt.Errorf("phonepe status check failed: status %d", resp.StatusCode)
	}

	var out struct {
		State          string `json:"state"`
		OrderID        string `json:"orderId"`
		PaymentDetails []struct {
			TransactionID string `json:"transactionId"`
		} `json:"paymentDetails"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return interfaces.PaymentState{}, fmt.Errorf("phonepe status check failed: malformed response: %w", err)
	}

	txn := out.OrderID
	if len(out.PaymentDetails) > 0 && out.PaymentDetails[0].TransactionID != "" {
		txn = out.PaymentDetails[0].TransactionID
	}
	log.Printf("[phonepe][gateway] status check order_id=%s state=%s", orderID, out.State)
	return interfaces.PaymentState{State: out.State, TransactionID: txn}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
