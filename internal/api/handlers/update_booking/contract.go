package update_booking

import (
	"context"

	"github.com/m04kA/SMC-StayBookings/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayBookings/internal/validation"
)

type BookingService interface {
	Update(ctx context.Context, documentNumber string, raw validation.RawBooking) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
