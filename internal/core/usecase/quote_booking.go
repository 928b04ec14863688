package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
)

type QuoteBookingUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewQuoteBookingUseCase(properties port.PropertyRepositoryPort) *QuoteBookingUseCase {
	return &QuoteBookingUseCase{properties: properties}
}

// Execute считает стоимость черновика. Вход не требуется.
func (uc *QuoteBookingUseCase) Execute(ctx context.Context, propertyID, startDate, endDate string) (*domain.BookingQuote, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, domain.ErrMissingDates
	}

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil {
		return nil, domain.ErrPropertyNotFound
	}

	draft := domain.NewBookingDraft(*property)
	if err := draft.SetDates(startDate, endDate); err != nil {
		return nil, err
	}
	quote, err := draft.Quote()
	if err != nil {
		return nil, err
	}

	return &domain.BookingQuote{
		PropertyID: property.ID,
		StartDate:  domain.FormatCalendarDate(draft.StartDate),
		EndDate:    domain.FormatCalendarDate(draft.EndDate),
		Quote:      quote,
	}, nil
}
