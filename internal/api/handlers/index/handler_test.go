package index

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayBookings/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(logger.Discard()).Handle(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>Stay bookings</title>")
	assert.Contains(t, w.Body.String(), `name="document_number"`)
}
