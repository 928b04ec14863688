package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus - статус бронирования.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking - бронирование. TotalPrice вычисляется при создании и дальше не меняется.
type Booking struct {
	ID         string
	PropertyID string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	Status     BookingStatus
	TotalPrice float64
	CreatedAt  time.Time
}

// NewBooking создает бронирование в статусе pending.
// Даты приводятся к календарным; перевернутый диапазон выравнивается,
// бронь на ноль ночей отклоняется.
func NewBooking(propertyID, userID string, start, end time.Time, totalPrice float64) (*Booking, error) {
	start, end = CalendarDate(start), CalendarDate(end)
	if end.Before(start) {
		start, end = end, start
	}
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	return &Booking{
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		Status:     BookingPending,
		TotalPrice: totalPrice,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// CanTransition сообщает, разрешен ли переход статуса.
// Допустимы только pending -> confirmed и pending -> cancelled.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	return s == BookingPending && (to == BookingConfirmed || to == BookingCancelled)
}

// Transition переводит бронирование в новый статус.
func (b *Booking) Transition(to BookingStatus) error {
	if !b.Status.CanTransition(to) {
		return ErrInvalidBookingTransition
	}
	b.Status = to
	return nil
}

// IsUpcoming - бронь еще не закончилась на дату now.
func (b Booking) IsUpcoming(now time.Time) bool {
	return !b.EndDate.Before(CalendarDate(now))
}

// BookingRequestedEvent публикуется после отправки запроса на бронирование.
type BookingRequestedEvent struct {
	BookingID  string        `json:"booking_id"`
	PropertyID string        `json:"property_id"`
	LandlordID string        `json:"landlord_id"`
	UserID     string        `json:"user_id"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Nights     int           `json:"nights"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}
