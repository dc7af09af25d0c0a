package models

import (
	"github.com/m04kA/SMC-StayBookings/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string  `json:"id"`
	Fullname       string  `json:"fullname"`
	CheckinDate    string  `json:"checkin_date"`  // "2024-06-01"
	CheckoutDate   string  `json:"checkout_date"` // "2024-06-10"
	Price          float64 `json:"price"`
	DocumentNumber string  `json:"document_number"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		Fullname:       b.Fullname,
		CheckinDate:    b.CheckinDate.String(),
		CheckoutDate:   b.CheckoutDate.String(),
		Price:          b.Price,
		DocumentNumber: b.DocumentNumber,
	}
}

// FromDomainBookingList конвертирует список бронирований.
// Для пустого списка возвращает пустой слайс, а не nil.
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
