package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plantcart/internal/adapter/http/handlers/mocks"
	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func adminOrderRouter(uc usecase.IOrderAdminUseCase) *gin.Engine {
	h := NewOrderAdminHandler(uc)
	r := gin.New()
	r.GET("/api/orders", h.List)
	r.GET("/api/orders/:id", h.GetByID)
	r.PUT("/api/orders/:id", h.UpdateStatus)
	r.DELETE("/api/orders/:id", h.Delete)
	return r
}

func TestOrderAdminHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderAdminUseCase(ctrl)

	now := time.Now().UTC()
	uc.EXPECT().List(gomock.Any()).Return([]entities.Order{
		{ID: "ORD-2", Status: entities.OrderStatusNew, PaymentStatus: entities.PaymentStatusPaid, CreatedAt: now},
		{ID: "ORD-1", Status: entities.OrderStatusCompleted, PaymentStatus: entities.PaymentStatusPaid, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	adminOrderRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["id"] != "ORD-2" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOrderAdminHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderAdminUseCase(ctrl)

	uc.EXPECT().GetByID(gomock.Any(), "ORD-ghost").Return(entities.Order{}, usecase.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-ghost", nil)
	w := httptest.NewRecorder()
	adminOrderRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOrderAdminHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderAdminUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/ORD-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		adminOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderAdminUseCase(ctrl)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", entities.OrderStatus("shipped")).Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/ORD-1", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		adminOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backwards transition rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderAdminUseCase(ctrl)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", entities.OrderStatusNew).Return(entities.Order{}, entities.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/ORD-1", bytes.NewBufferString(`{"status":"new"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		adminOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderAdminUseCase(ctrl)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", entities.OrderStatusInProcess).Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusInProcess}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/ORD-1", bytes.NewBufferString(`{"status":"in-process"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		adminOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in-process" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderAdminHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderAdminUseCase(ctrl)

	uc.EXPECT().Delete(gomock.Any(), "ORD-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/ORD-1", nil)
	w := httptest.NewRecorder()
	adminOrderRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
