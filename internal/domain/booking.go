package domain

import (
	"github.com/m04kA/SMC-StayBookings/pkg/types"
)

// Booking represents a guest stay reservation
type Booking struct {
	ID             string // назначается хранилищем при создании
	Fullname       string
	CheckinDate    types.Date
	CheckoutDate   types.Date
	Price          float64
	DocumentNumber string // номер документа гостя, уникален среди всех бронирований
}

// BookingPatch частичное обновление бронирования.
// nil поле означает "не менять". Номер документа изменить нельзя.
type BookingPatch struct {
	Fullname     *string
	CheckinDate  *types.Date
	CheckoutDate *types.Date
	Price        *float64
}

// IsEmpty returns true if the patch changes nothing
func (p *BookingPatch) IsEmpty() bool {
	return p.Fullname == nil &&
		p.CheckinDate == nil &&
		p.CheckoutDate == nil &&
		p.Price == nil
}
