package domain

// Default schedule configuration values
const (
	DefaultOpenHour     = 10 // 10:00
	DefaultCloseHour    = 19 // 19:00
	DefaultHorizonWeeks = 1
)

// RecTypeCancelled маркер отмены: override с таким rec_type удаляет
// одно вхождение родительского события
const RecTypeCancelled = "none"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
