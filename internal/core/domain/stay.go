package domain

import (
	"math"
	"strings"
	"time"
)

// ServiceFee - фиксированный сервисный сбор, не зависит от длины проживания и цены.
const ServiceFee float64 = 49

// CalendarDateLayout - формат календарной даты в API.
const CalendarDateLayout = "2006-01-02"

// CalendarDate отбрасывает время суток и часовой пояс.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDate разбирает дату вида 2024-01-05.
// Пустая строка дает ErrMissingDates.
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingDates
	}
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatCalendarDate - обратное к ParseCalendarDate.
func FormatCalendarDate(t time.Time) string {
	return t.Format(CalendarDateLayout)
}

// StayQuote - расчет стоимости проживания.
type StayQuote struct {
	Nights     int
	Subtotal   float64
	ServiceFee float64
	Total      float64
}

// ComputeStay считает число ночей и итоговую сумму.
// Разница дат берется по модулю, поэтому порядок аргументов не важен.
// Проверка наличия дат - на стороне вызывающего кода.
func ComputeStay(start, end time.Time, price float64) StayQuote {
	diff := CalendarDate(end).Sub(CalendarDate(start))
	if diff < 0 {
		diff = -diff
	}
	nights := int(math.Ceil(diff.Hours() / 24))
	subtotal := float64(nights) * price

	return StayQuote{
		Nights:     nights,
		Subtotal:   subtotal,
		ServiceFee: ServiceFee,
		Total:      subtotal + ServiceFee,
	}
}

// DraftState - состояние черновика бронирования.
type DraftState int

const (
	DraftEmpty DraftState = iota
	DraftPriced
	DraftSubmitted
)

func (s DraftState) String() string {
	switch s {
	case DraftEmpty:
		return "empty"
	case DraftPriced:
		return "priced"
	case DraftSubmitted:
		return "submitted"
	}
	return "unknown"
}

// BookingDraft - несохраненный черновик: Empty -> Priced -> Submitted.
type BookingDraft struct {
	Property  Property
	StartDate time.Time
	EndDate   time.Time
	state     DraftState
	quote     StayQuote
}

// NewBookingDraft создает пустой черновик для объекта.
func NewBookingDraft(property Property) *BookingDraft {
	return &BookingDraft{Property: property}
}

// State возвращает текущее состояние черновика.
func (d *BookingDraft) State() DraftState {
	return d.state
}

// SetDates задает даты в формате YYYY-MM-DD и пересчитывает стоимость.
// Если хотя бы одна дата пустая, черновик возвращается в Empty.
func (d *BookingDraft) SetDates(startDate, endDate string) error {
	if d.state == DraftSubmitted {
		return ErrInvalidBookingTransition
	}
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		d.state = DraftEmpty
		d.quote = StayQuote{}
		return ErrMissingDates
	}

	start, err := ParseCalendarDate(startDate)
	if err != nil {
		return err
	}
	end, err := ParseCalendarDate(endDate)
	if err != nil {
		return err
	}

	d.StartDate, d.EndDate = start, end
	d.quote = ComputeStay(start, end, d.Property.Price)
	d.state = DraftPriced
	return nil
}

// Quote возвращает расчет. Для пустого черновика - ErrMissingDates.
func (d *BookingDraft) Quote() (StayQuote, error) {
	if d.state == DraftEmpty {
		return StayQuote{}, ErrMissingDates
	}
	return d.quote, nil
}

// MarkSubmitted переводит черновик в конечное состояние.
func (d *BookingDraft) MarkSubmitted() error {
	if d.state != DraftPriced {
		if d.state == DraftEmpty {
			return ErrMissingDates
		}
		return ErrInvalidBookingTransition
	}
	d.state = DraftSubmitted
	return nil
}
