package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	response "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/response"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/handlers/mocks"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
)

func TestEstimateHandler_PreviewEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IEstimateUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/estimates/preview", NewEstimateHandler(uc).PreviewEstimate)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := postJSON(newRouter(mocks.NewMockIEstimateUseCase(ctrl)), "/v1/estimates/preview", "[")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Preview(gomock.Any(), "", gomock.Any()).Return(entities.Estimate{}, pricing.ErrVariantRequired)

		w := postJSON(newRouter(uc), "/v1/estimates/preview", `{"area_size":200}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Preview(gomock.Any(), "labor_hours", gomock.Any()).Return(entities.Estimate{
			Variant:              entities.VariantLaborHours,
			HoursPerVisit:        2,
			PricePerVisitExTax:   120,
			PricePerVisitInclTax: 138,
			MonthlyPriceExTax:    520,
			MonthlyPriceInclTax:  598,
		}, nil)

		w := postJSON(newRouter(uc), "/v1/estimates/preview", `{"variant":"labor_hours","area_size":200}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.EstimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Headline != 598 || body.HoursPerVisit != 2 {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestEstimateHandler_ListVariants(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	uc.EXPECT().Variants().Return([]usecase.VariantInfo{
		{Variant: entities.VariantAreaRate, DependsOn: []entities.Field{entities.FieldAreaSize}},
		{Variant: entities.VariantLaborHours, DependsOn: []entities.Field{entities.FieldAreaSize}, Default: true},
	})

	r := gin.New()
	r.GET("/v1/pricing/variants", NewEstimateHandler(uc).ListVariants)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/variants", nil))

	var body []response.VariantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if w.Code != http.StatusOK || len(body) != 2 || !body[1].Default {
		t.Fatalf("unexpected response %d %+v", w.Code, body)
	}
}
