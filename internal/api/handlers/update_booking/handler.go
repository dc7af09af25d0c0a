package update_booking

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
	msgInvalidRequestBody    = "invalid request body"
	msgValidationFailed      = "validation failed"
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

// Handle PUT /bookings/{document_number}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	documentNumber := mux.Vars(r)["document_number"]

	if !validation.ValidDocumentNumber(documentNumber) {
		h.logger.Warn("PUT /bookings/{document_number} - Invalid document number: %q", documentNumber)
		handlers.RespondBadRequest(w, msgInvalidDocumentNumber)
		return
	}

	var raw validation.RawBooking
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		// Несовпадение типа поля отдаем вместе с остальными нарушениями
		if typeErrs, ok := validation.FromDecodeError(err); ok {
			fieldErrs := validation.PatchDecodeErrors(raw, typeErrs)
			h.logger.Warn("PUT /bookings/{document_number} - Validation failed: %v", fieldErrs)
			handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)
			return
		}
		h.logger.Warn("PUT /bookings/{document_number} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Update(r.Context(), documentNumber, raw)
	if err != nil {
		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("PUT /bookings/{document_number} - Validation failed: document_number=%s, %v",
				documentNumber, fieldErrs)
			handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{document_number} - Booking not found: document_number=%s", documentNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /bookings/{document_number} - Failed to update booking: document_number=%s, error=%v",
				documentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{document_number} - Booking updated successfully: document_number=%s", documentNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
