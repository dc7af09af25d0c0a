package generate

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StayBookings/internal/api/handlers"
)

const msgNoMessage = "No message provided"

type Handler struct {
	classifier Classifier
	logger     Logger
}

func NewHandler(classifier Classifier, logger Logger) *Handler {
	return &Handler{
		classifier: classifier,
		logger:     logger,
	}
}

// Handle POST /generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /generate - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgNoMessage})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.logger.Warn("POST /generate - Empty message")
		handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgNoMessage})
		return
	}

	result, err := h.classifier.Classify(r.Context(), req.Message)
	if err != nil {
		h.logger.Error("POST /generate - Failed to classify message: error=%v", err)
		handlers.RespondBadGateway(w)
		return
	}

	h.logger.Info("POST /generate - Message classified: label=%s", result.Label)
	handlers.RespondJSON(w, http.StatusOK, result)
}
