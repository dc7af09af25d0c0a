package create_booking

import (
	"context"

	"github.com/m04kA/SMC-StayBookings/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayBookings/internal/validation"
)

type BookingService interface {
	Create(ctx context.Context, raw validation.RawBooking) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
