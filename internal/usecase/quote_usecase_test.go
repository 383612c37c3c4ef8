package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
	mock_interfaces "github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces/mocks"
)

func testRegistry(t *testing.T) *pricing.Registry {
	t.Helper()
	reg, err := pricing.NewRegistry(pricing.DefaultConfig(), "")
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func validInput() entities.QuoteInput {
	return entities.QuoteInput{
		ClientName:   "Aroha Ngata",
		ClientEmail:  "aroha@example.co.nz",
		ClientPhone:  "021 123 4567",
		ServiceType:  "regular",
		PremisesType: entities.PremisesOffice,
		AreaSize:     200,
		Frequency:    entities.FrequencyMonthly,
	}
}

func TestQuoteUseCase_Submit(t *testing.T) {
	fixed := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("invalid input never reaches repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.Nop())

		in := validInput()
		in.ClientName = ""
		_, err := uc.Submit(context.Background(), "area_rate", in)
		msgs := validation.Messages(err)
		if len(msgs) != 1 || msgs[0] != "Client name is required" {
			t.Fatalf("expected only the name message, got %v", err)
		}
	})

	t.Run("variant is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.Nop())

		_, err := uc.Submit(context.Background(), "", validInput())
		if !errors.Is(err, pricing.ErrVariantRequired) {
			t.Fatalf("expected ErrVariantRequired, got %v", err)
		}
	})

	t.Run("stores pending quote with server-side price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		phone := mock_interfaces.NewMockIPhoneNormalizer(ctrl)

		phone.EXPECT().Normalize("021 123 4567").Return("+64211234567")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})
		notifier.EXPECT().QuoteSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		uc := NewQuoteUseCase(repo, testRegistry(t), notifier, zerolog.Nop(),
			WithQuotePhoneNormalizer(phone),
			WithQuoteClock(func() time.Time { return fixed }))

		in := validInput()
		in.ClientName = "  Aroha Ngata "
		in.Frequency = "Monthly"
		q, err := uc.Submit(context.Background(), "area_rate", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatalf("expected generated id")
		}
		if q.Status != entities.QuoteStatusPending {
			t.Fatalf("expected pending, got %s", q.Status)
		}
		if q.EstimatedPrice != 570 || q.Estimate.EstimatedPrice != 570 {
			t.Fatalf("expected 570, got %v", q.EstimatedPrice)
		}
		if q.Input.ClientName != "Aroha Ngata" || q.Input.Frequency != entities.FrequencyMonthly {
			t.Fatalf("expected normalized input, got %+v", q.Input)
		}
		if q.Input.ClientPhone != "+64211234567" {
			t.Fatalf("expected normalized phone, got %q", q.Input.ClientPhone)
		}
		if !q.CreatedAt.Equal(fixed) {
			t.Fatalf("expected created_at %v, got %v", fixed, q.CreatedAt)
		}
		engine, _ := testRegistry(t).Resolve("area_rate")
		if !pricing.Reproduces(engine, q) {
			t.Fatalf("stored price does not reproduce")
		}
	})

	t.Run("labor hours records monthly incl tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})
		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.Nop())

		in := validInput()
		in.Frequency = entities.FrequencyWeekly
		in.RestroomCount, in.KitchenetteCount, in.BinCount = 1, 1, 2
		q, err := uc.Submit(context.Background(), "labor_hours", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.PricingVariant != entities.VariantLaborHours || q.EstimatedPrice != 598 {
			t.Fatalf("expected labor_hours 598, got %s %v", q.PricingVariant, q.EstimatedPrice)
		}
	})

	t.Run("non-standard vocabulary is stored and logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})
		var logs bytes.Buffer
		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.New(&logs))

		in := validInput()
		in.PremisesType = "school"
		in.Frequency = "quarterly"
		q, err := uc.Submit(context.Background(), "area_rate", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Input.PremisesType != "school" || q.Input.Frequency != "quarterly" {
			t.Fatalf("expected values kept verbatim, got %+v", q.Input)
		}
		out := logs.String()
		if !strings.Contains(out, `"building_type":"school"`) || !strings.Contains(out, `"frequency":"quarterly"`) {
			t.Fatalf("expected warnings for both values, got %s", out)
		}
	})

	t.Run("repository failure is a submission failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("dynamodb down"))
		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.Nop())

		_, err := uc.Submit(context.Background(), "area_rate", validInput())
		if !errors.Is(err, ErrSubmissionFailed) {
			t.Fatalf("expected ErrSubmissionFailed, got %v", err)
		}
	})

	t.Run("notification failure does not fail submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})
		notifier.EXPECT().QuoteSubmitted(gomock.Any(), gomock.Any()).Return(errors.New("smtp refused"))
		uc := NewQuoteUseCase(repo, testRegistry(t), notifier, zerolog.Nop())

		if _, err := uc.Submit(context.Background(), "area_rate", validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, testRegistry(t), nil, zerolog.Nop())
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)
		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.Nop())

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("preserves back-office status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: "on_hold"}, nil)
		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.Nop())

		q, err := uc.GetByID(context.Background(), "q-1")
		if err != nil || q.Status != "on_hold" {
			t.Fatalf("expected verbatim status, got %v %v", q.Status, err)
		}
	})
}

func TestQuoteUseCase_Documents(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, testRegistry(t), nil, zerolog.Nop())
		if _, err := uc.RenderPDF(context.Background(), "q-1"); !errors.Is(err, ErrDocumentsDisabled) {
			t.Fatalf("expected ErrDocumentsDisabled, got %v", err)
		}
		if _, err := uc.ExportXLSX(context.Background(), ""); !errors.Is(err, ErrDocumentsDisabled) {
			t.Fatalf("expected ErrDocumentsDisabled, got %v", err)
		}
	})

	t.Run("pdf and export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		sheet := mock_interfaces.NewMockIQuoteSheetRenderer(ctrl)
		exporter := mock_interfaces.NewMockIQuoteExporter(ctrl)

		q := entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		sheet.EXPECT().QuoteSheet(q).Return([]byte("%PDF"), nil)
		repo.EXPECT().List(gomock.Any(), entities.QuoteStatusAccepted).Return([]entities.Quote{q}, nil)
		exporter.EXPECT().QuotesWorkbook([]entities.Quote{q}).Return([]byte("PK"), nil)

		uc := NewQuoteUseCase(repo, testRegistry(t), nil, zerolog.Nop(), WithQuoteDocuments(sheet, exporter))
		pdf, err := uc.RenderPDF(context.Background(), "q-1")
		if err != nil || string(pdf) != "%PDF" {
			t.Fatalf("unexpected pdf result %q %v", pdf, err)
		}
		xlsx, err := uc.ExportXLSX(context.Background(), " Accepted ")
		if err != nil || string(xlsx) != "PK" {
			t.Fatalf("unexpected xlsx result %q %v", xlsx, err)
		}
	})
}
