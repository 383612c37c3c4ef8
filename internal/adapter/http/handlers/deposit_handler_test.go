package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/handlers/mocks"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newDepositRouter(h *DepositHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/deposits/:quote_id", h.CreateDeposit)
	r.GET("/v1/deposits/:quote_id", h.GetDeposit)
	return r
}

func TestDepositHandler_CreateDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		w := postJSON(newDepositRouter(NewDepositHandler(uc, false)), "/v1/deposits/q-1", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().CreateDeposit(gomock.Any(), "q-1", json.RawMessage("{}")).Return(entities.DepositPayment{ID: "pay-1", QuoteID: "q-1"}, nil)

		w := postJSON(newDepositRouter(NewDepositHandler(uc, true)), "/v1/deposits/q-1", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped errors", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrQuoteNotAccepted:               http.StatusConflict,
			usecase.ErrQuoteNotFound:                  http.StatusNotFound,
			usecase.ErrPaymentGatewayUnauthorized:     http.StatusUnauthorized,
			usecase.ErrPaymentGatewayCustomerNotFound: http.StatusBadRequest,
			usecase.ErrPaymentGatewayNotConfigured:    http.StatusServiceUnavailable,
			errors.New("boom"):                        http.StatusInternalServerError,
		}
		for err, want := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIDepositUseCase(ctrl)
			uc.EXPECT().CreateDeposit(gomock.Any(), "q-1", gomock.Any()).Return(entities.DepositPayment{}, err)

			w := postJSON(newDepositRouter(NewDepositHandler(uc, false)), "/v1/deposits/q-1", `{"payment_method_id":"visa"}`)
			if w.Code != want {
				t.Fatalf("%v: expected %d, got %d", err, want, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("wrapped payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().CreateDeposit(gomock.Any(), "q-1", json.RawMessage(`{"payment_method_id":"visa"}`)).
			Return(entities.DepositPayment{ID: "pay-1", QuoteID: "q-1", Amount: 114, Date: time.Now().UTC(), Status: entities.PaymentStatusApproved}, nil)

		w := postJSON(newDepositRouter(NewDepositHandler(uc, false)), "/v1/deposits/q-1", `{"mp_payload":{"payment_method_id":"visa"}}`)
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"amount":114`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestDepositHandler_GetDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().LatestByQuoteID(gomock.Any(), "q-1").Return(entities.DepositPayment{}, usecase.ErrDepositNotFound)

		w := httptest.NewRecorder()
		newDepositRouter(NewDepositHandler(uc, false)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/deposits/q-1", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().LatestByQuoteID(gomock.Any(), "q-1").Return(entities.DepositPayment{ID: "pay-2", QuoteID: "q-1"}, nil)

		w := httptest.NewRecorder()
		newDepositRouter(NewDepositHandler(uc, false)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/deposits/q-1", nil))
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"payment_id":"pay-2"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	read := func(body string) (json.RawMessage, error) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		return readMPPayload(c)
	}

	if p, err := read(""); err != nil || string(p) != "{}" {
		t.Fatalf("expected empty object, got %s %v", p, err)
	}
	if _, err := read(`{"mp_payload":null}`); err == nil {
		t.Fatalf("expected error for null mp_payload")
	}
	if p, err := read(`{"payment_method_id":"visa"}`); err != nil || string(p) != `{"payment_method_id":"visa"}` {
		t.Fatalf("expected raw body, got %s %v", p, err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(c); err == nil {
		t.Fatalf("expected read error")
	}
}
