package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type SubmitBookingUseCase struct {
	properties port.PropertyRepositoryPort
	gateway    port.BookingGatewayPort
	publisher  port.BookingEventPublisherPort
	timeout    time.Duration
}

func NewSubmitBookingUseCase(
	properties port.PropertyRepositoryPort,
	gateway port.BookingGatewayPort,
	publisher port.BookingEventPublisherPort,
	gatewayTimeout time.Duration,
) *SubmitBookingUseCase {
	return &SubmitBookingUseCase{
		properties: properties,
		gateway:    gateway,
		publisher:  publisher,
		timeout:    gatewayTimeout,
	}
}

// Execute проверяет вход, даты и объект, считает стоимость и отправляет
// запрос на бронирование. Бронь создается в статусе pending.
func (uc *SubmitBookingUseCase) Execute(ctx context.Context, sess *session.Session, propertyID, startDate, endDate string) (*domain.BookingReceipt, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "SubmitBooking",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	user, ok := sess.CurrentUser()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	ucLogger = ucLogger.WithFields(port.Fields{"user_id": user.ID})

	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, domain.ErrMissingDates
	}

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil {
		return nil, domain.ErrPropertyNotFound
	}
	if !property.Available {
		return nil, domain.ErrPropertyUnavailable
	}

	draft := domain.NewBookingDraft(*property)
	if err := draft.SetDates(startDate, endDate); err != nil {
		return nil, err
	}
	quote, err := draft.Quote()
	if err != nil {
		return nil, err
	}

	booking, err := domain.NewBooking(property.ID, user.ID, draft.StartDate, draft.EndDate, quote.Total)
	if err != nil {
		return nil, err
	}

	gwCtx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	accepted, err := uc.gateway.Submit(gwCtx, *booking)
	if err != nil {
		ucLogger.Error("Booking gateway failed", err, nil)
		return nil, err
	}
	if err := draft.MarkSubmitted(); err != nil {
		return nil, err
	}
	sess.AppendBooking(*accepted)

	event := domain.BookingRequestedEvent{
		BookingID:  accepted.ID,
		PropertyID: property.ID,
		LandlordID: property.LandlordID,
		UserID:     user.ID,
		StartDate:  domain.FormatCalendarDate(accepted.StartDate),
		EndDate:    domain.FormatCalendarDate(accepted.EndDate),
		Nights:     quote.Nights,
		TotalPrice: accepted.TotalPrice,
		Status:     accepted.Status,
		OccurredAt: time.Now().UTC(),
	}
	// Бронь уже принята, сбой уведомления не откатывает ее.
	if err := uc.publisher.PublishBookingRequested(ctx, event); err != nil {
		ucLogger.Warn("Failed to publish booking event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"booking_id": accepted.ID,
		"nights":     quote.Nights,
		"total":      quote.Total,
	})
	return &domain.BookingReceipt{Booking: *accepted, Quote: quote}, nil
}
