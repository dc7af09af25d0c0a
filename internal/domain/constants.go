package domain

// Ограничения полей бронирования
const (
	MaxFullnameLength    = 50
	DocumentNumberLength = 10
	MinPrice             = 0
)

// DateFormat формат дат заезда и выезда (YYYY-MM-DD)
const DateFormat = "2006-01-02"
