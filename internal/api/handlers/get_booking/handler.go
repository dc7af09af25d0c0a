package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBookings/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookings/internal/service/bookings"
	"github.com/m04kA/SMC-StayBookings/internal/validation"
)

const (
	msgInvalidDocumentNumber = "Invalid document number format"
	msgNotFound              = "Booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /bookings/{document_number}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	documentNumber := mux.Vars(r)["document_number"]

	// Некорректный номер отклоняем до обращения к хранилищу
	if !validation.ValidDocumentNumber(documentNumber) {
		h.logger.Warn("GET /bookings/{document_number} - Invalid document number: %q", documentNumber)
		handlers.RespondBadRequest(w, msgInvalidDocumentNumber)
		return
	}

	booking, err := h.service.GetByDocumentNumber(r.Context(), documentNumber)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{document_number} - Booking not found: document_number=%s", documentNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{document_number} - Failed to get booking: document_number=%s, error=%v",
				documentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{document_number} - Booking retrieved successfully: document_number=%s", documentNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
