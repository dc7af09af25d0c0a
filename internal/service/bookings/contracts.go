package bookings

import (
	"context"

	"github.com/m04kA/SMC-StayBookings/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований.
// Реализуется booking.Repository (SQL) и booking.MongoRepository.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Booking, error)
	Update(ctx context.Context, documentNumber string, patch *domain.BookingPatch) (*domain.Booking, error)
	Delete(ctx context.Context, documentNumber string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
