package middleware

import (
	"net/http"
	"time"
)

// AccessLog логирует каждый запрос: метод, путь, статус, длительность, request id
func AccessLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			duration := time.Since(start)

			if rec.status >= http.StatusInternalServerError {
				log.Error("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
				return
			}
			log.Info("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
		})
	}
}
