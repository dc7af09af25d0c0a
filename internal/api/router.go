package api

import (
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/m04kA/SMC-StayBookings/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-StayBookings/internal/api/handlers/delete_booking"
	generateHandler "github.com/m04kA/SMC-StayBookings/internal/api/handlers/generate"
	getBookingHandler "github.com/m04kA/SMC-StayBookings/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-StayBookings/internal/api/handlers/get_bookings"
	indexHandler "github.com/m04kA/SMC-StayBookings/internal/api/handlers/index"
	updateBookingHandler "github.com/m04kA/SMC-StayBookings/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-StayBookings/internal/api/middleware"
)

// Options параметры роутера
type Options struct {
	// Metrics nil отключает сбор метрик и endpoint
	Metrics     Metrics
	MetricsPath string
}

// NewRouter собирает HTTP обработчик со всеми маршрутами.
// CORS, request id и access log оборачивают роутер целиком, чтобы срабатывать и на 404/405.
func NewRouter(bookingSvc BookingService, classifierClient Classifier, log Logger, opts Options) http.Handler {
	index := indexHandler.NewHandler(log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	generate := generateHandler.NewHandler(classifierClient, log)

	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/", index.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	r.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{document_number}", getBooking.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{document_number}", updateBooking.Handle).Methods(http.MethodPut)
	r.HandleFunc("/bookings/{document_number}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Классификация текста ---
	r.HandleFunc("/generate", generate.Handle).Methods(http.MethodPost)

	return middleware.CORS(middleware.RequestID(middleware.AccessLog(log)(r)))
}
