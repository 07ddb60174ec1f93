package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (без даты и секунд)
// Используется для рабочих часов, временных окон услуг и слотов
type TimeString string

const timeStringLayout = "15:04"

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeStringLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	// Допускаем формат с секундами (так хранит время конфигурация расписания)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("types: invalid time string %q, expected HH:MM or HH:MM:SS", s)
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// parse разбирает TimeString обратно в time.Time (дата условная)
func (ts TimeString) parse() (time.Time, error) {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid time string %q: %v", string(ts), err)
	}
	return t, nil
}

// Minutes возвращает количество минут с начала суток
// Для некорректного значения возвращает 0
func (ts TimeString) Minutes() int {
	t, err := ts.parse()
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Minutes() > other.Minutes()
}

// AddMinutes добавляет минуты к времени суток
// Возвращает ошибку при выходе за пределы суток
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := ts.Minutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("types: %s + %d minutes is outside of a day", ts, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Sub возвращает разницу ts - other в минутах
func (ts TimeString) Sub(other TimeString) int {
	return ts.Minutes() - other.Minutes()
}

// At привязывает время суток к конкретной дате
func (ts TimeString) At(day time.Time) time.Time {
	m := ts.Minutes()
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, day.Location())
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if ts == "" {
		return nil, nil
	}
	if _, err := ts.parse(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает string, []byte и time.Time (колонки типа TIME)
func (ts *TimeString) Scan(value interface{}) error {
	if value == nil {
		*ts = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
	case time.Time:
		*ts = NewTimeString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", value)
	}

	return nil
}
