package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-StayBookings/internal/service/bookings/models"
)

type BookingService interface {
	GetAll(ctx context.Context) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
