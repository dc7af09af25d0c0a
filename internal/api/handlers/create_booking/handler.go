package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBookings/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookings/internal/service/bookings"
	"github.com/m04kA/SMC-StayBookings/internal/validation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgDuplicateDocument  = "Document number already exists"
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

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var raw validation.RawBooking
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		// Несовпадение типа поля отдаем вместе с остальными нарушениями
		if typeErrs, ok := validation.FromDecodeError(err); ok {
			fieldErrs := validation.BookingDecodeErrors(raw, typeErrs)
			h.logger.Warn("POST /book - Validation failed: %v", fieldErrs)
			handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)
			return
		}
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Create(r.Context(), raw)
	if err != nil {
		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("POST /book - Validation failed: %v", fieldErrs)
			handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)

		case errors.Is(err, bookings.ErrDuplicateDocumentNumber):
			h.logger.Warn("POST /book - Duplicate document number")
			handlers.RespondBadRequest(w, msgDuplicateDocument)

		default:
			h.logger.Error("POST /book - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: id=%s, document_number=%s",
		booking.ID, booking.DocumentNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
