package delete_booking

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
	msgDeleted               = "Booking deleted successfully"
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

// Handle DELETE /bookings/{document_number}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	documentNumber := mux.Vars(r)["document_number"]

	if !validation.ValidDocumentNumber(documentNumber) {
		h.logger.Warn("DELETE /bookings/{document_number} - Invalid document number: %q", documentNumber)
		handlers.RespondBadRequest(w, msgInvalidDocumentNumber)
		return
	}

	err := h.service.Delete(r.Context(), documentNumber)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{document_number} - Booking not found: document_number=%s", documentNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /bookings/{document_number} - Failed to delete booking: document_number=%s, error=%v",
				documentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{document_number} - Booking deleted successfully: document_number=%s", documentNumber)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgDeleted})
}
