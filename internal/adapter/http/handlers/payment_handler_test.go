package handlers

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"plantcart/internal/adapter/http/handlers/mocks"
	"plantcart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func webhookHash(username, password string) string {
	sum := sha256.Sum256([]byte(username + ":" + password))
	return hex.EncodeToString(sum[:])
}

func postCallback(r *gin.Engine, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/phonepe/callback", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_Callback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PHONEPE_WEBHOOK_USERNAME", "hookuser")
	t.Setenv("PHONEPE_WEBHOOK_PASSWORD", "hookpass")
	auth := webhookHash("hookuser", "hookpass")

	newRouter := func(uc usecase.IReconcileUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/api/phonepe/callback", NewPaymentHandler(uc).Callback)
		return r
	}

	completedBody := `{"event":"checkout.order.completed","payload":{"merchantOrderId":"ORD-1","state":"COMPLETED","transactionId":"TXN-1"}}`

	t.Run("missing auth header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)

		w := postCallback(newRouter(uc), completedBody, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong auth hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)

		w := postCallback(newRouter(uc), completedBody, webhookHash("hookuser", "wrong"))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("accepts plain and wrapped hash", func(t *testing.T) {
		for _, header := range []string{auth, "SHA256(" + auth + ")"} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIReconcileUseCase(ctrl)
			uc.EXPECT().HandleWebhook(gomock.Any(), usecase.WebhookEvent{
				Event:           "checkout.order.completed",
				State:           "COMPLETED",
				MerchantOrderID: "ORD-1",
				TransactionID:   "TXN-1",
			}).Return(nil)

			w := postCallback(newRouter(uc), completedBody, header)
			if w.Code != http.StatusOK || w.Body.String() != "OK" {
				t.Fatalf("header %q: expected 200 OK, got %d %q", header, w.Code, w.Body.String())
			}
			ctrl.Finish()
		}
	})

	t.Run("base64 wrapped payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)

		uc.EXPECT().HandleWebhook(gomock.Any(), usecase.WebhookEvent{
			Event:           "checkout.order.failed",
			State:           "FAILED",
			MerchantOrderID: "ORD-2",
			TransactionID:   "OMO-2",
		}).Return(nil)

		inner := base64.StdEncoding.EncodeToString([]byte(`{"merchantOrderId":"ORD-2","state":"FAILED","orderId":"OMO-2"}`))
		body := `{"event":"checkout.order.failed","payload":"` + inner + `"}`
		w := postCallback(newRouter(uc), body, auth)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)

		for _, body := range []string{"{", `{"event":"x","payload":"!!not-base64!!"}`} {
			w := postCallback(newRouter(uc), body, auth)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %q: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(usecase.ErrOrderNotFound)

		w := postCallback(newRouter(uc), completedBody, auth)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Callback_UnconfiguredCredsSkipAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PHONEPE_WEBHOOK_USERNAME", "")
	t.Setenv("PHONEPE_WEBHOOK_PASSWORD", "")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReconcileUseCase(ctrl)
	uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(nil)

	r := gin.New()
	r.POST("/api/phonepe/callback", NewPaymentHandler(uc).Callback)

	body := `{"event":"checkout.order.completed","payload":{"merchantOrderId":"ORD-1","state":"COMPLETED"}}`
	w := postCallback(r, body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth skipped, got %d", w.Code)
	}
}

func TestPaymentHandler_Redirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IReconcileUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/api/phonepe/redirect", NewPaymentHandler(uc).Redirect)
		return r
	}

	t.Run("outcomes map to query params", func(t *testing.T) {
		outcomes := []usecase.RedirectOutcome{
			usecase.RedirectOutcomeSuccess,
			usecase.RedirectOutcomeFailure,
			usecase.RedirectOutcomePending,
			usecase.RedirectOutcomeError,
		}
		for _, outcome := range outcomes {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIReconcileUseCase(ctrl)
			uc.EXPECT().ResolveRedirect(gomock.Any(), "ORD-1").Return(outcome)

			req := httptest.NewRequest(http.MethodGet, "/api/phonepe/redirect?orderId=ORD-1", nil)
			w := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("outcome %s: expected 302, got %d", outcome, w.Code)
			}
			want := "/?payment=" + string(outcome) + "&order=ORD-1"
			if got := w.Header().Get("Location"); got != want {
				t.Fatalf("outcome %s: expected location %q, got %q", outcome, want, got)
			}
			ctrl.Finish()
		}
	})

	t.Run("missing order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		// No ResolveRedirect expectation: nothing to resolve.

		req := httptest.NewRequest(http.MethodGet, "/api/phonepe/redirect", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if got := w.Header().Get("Location"); got != "/?payment=error&order=" {
			t.Fatalf("unexpected location %q", got)
		}
	})
}
