package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	response "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/response"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/handlers/mocks"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
)

func newContactRouter(h *ContactHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/contact", h.CreateContact)
	r.GET("/v1/contact/:id", h.GetContact)
	return r
}

func TestContactHandler_CreateContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ContactMessage{}, &validation.Error{Messages: []string{"Name is required", "Message is required"}})

		w := postJSON(newContactRouter(NewContactHandler(uc)), "/v1/contact", `{"email":"t@example.com"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("submission failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ContactMessage{}, errors.Join(usecase.ErrSubmissionFailed, errors.New("down")))

		w := postJSON(newContactRouter(NewContactHandler(uc)), "/v1/contact", `{"name":"Tama","email":"t@example.com","message":"Hi"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), entities.ContactMessage{Name: "Tama", Email: "t@example.com", Message: "Hi"}).
			Return(entities.ContactMessage{ID: "c-1", Name: "Tama", Email: "t@example.com", Message: "Hi", Status: entities.ContactStatusNew}, nil)

		w := postJSON(newContactRouter(NewContactHandler(uc)), "/v1/contact", `{"name":"Tama","email":"t@example.com","message":"Hi"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.ContactCreatedResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Message != response.ContactCreatedMessage || body.Contact.ID != "c-1" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestContactHandler_GetContact(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIContactUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.ContactMessage{}, usecase.ErrContactNotFound)

	w := httptest.NewRecorder()
	newContactRouter(NewContactHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/contact/c-404", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
