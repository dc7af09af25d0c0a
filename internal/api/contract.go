package api

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StayBookings/internal/integrations/classifier"
	"github.com/m04kA/SMC-StayBookings/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayBookings/internal/validation"
)

// BookingService все операции над бронированиями, нужные роутеру
type BookingService interface {
	Create(ctx context.Context, raw validation.RawBooking) (*models.BookingResponse, error)
	GetAll(ctx context.Context) ([]*models.BookingResponse, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.BookingResponse, error)
	Update(ctx context.Context, documentNumber string, raw validation.RawBooking) (*models.BookingResponse, error)
	Delete(ctx context.Context, documentNumber string) error
}

type Classifier interface {
	Classify(ctx context.Context, text string) (*classifier.Classification, error)
}

// Metrics HTTP метрики и их endpoint
type Metrics interface {
	Handler() http.Handler
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
