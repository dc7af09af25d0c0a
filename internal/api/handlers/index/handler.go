package index

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/m04kA/SMC-StayBookings/internal/api/handlers"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	Title        string
	BookPath     string
	BookingsPath string
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, pageData{
		Title:        "Stay bookings",
		BookPath:     "/book",
		BookingsPath: "/bookings",
	})
	if err != nil {
		h.logger.Error("GET / - Failed to render page: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
