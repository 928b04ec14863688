package rest

import (
	"net/http"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/contracts"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
)

type BookingHandlers struct {
	quoteUC     usecases_port.QuoteBookingUseCasePort
	submitUC    usecases_port.SubmitBookingUseCasePort
	cancelUC    usecases_port.CancelBookingUseCasePort
	dashboardUC usecases_port.GetDashboardUseCasePort
}

func NewBookingHandlers(
	quoteUC usecases_port.QuoteBookingUseCasePort,
	submitUC usecases_port.SubmitBookingUseCasePort,
	cancelUC usecases_port.CancelBookingUseCasePort,
	dashboardUC usecases_port.GetDashboardUseCasePort,
) *BookingHandlers {
	return &BookingHandlers{
		quoteUC:     quoteUC,
		submitUC:    submitUC,
		cancelUC:    cancelUC,
		dashboardUC: dashboardUC,
	}
}

// Quote обрабатывает GET /api/v1/bookings/quote
func (h *BookingHandlers) Quote(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "QuoteBooking"})

	q := r.URL.Query()
	quote, err := h.quoteUC.Execute(r.Context(), q.Get("propertyId"), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, QuoteResponse{
		PropertyID: quote.PropertyID,
		StartDate:  quote.StartDate,
		EndDate:    quote.EndDate,
		Nights:     quote.Quote.Nights,
		Subtotal:   quote.Quote.Subtotal,
		ServiceFee: quote.Quote.ServiceFee,
		Total:      quote.Quote.Total,
	})
}

// Submit обрабатывает POST /api/v1/bookings
func (h *BookingHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitBooking"})

	sess, _, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	var req CreateBookingRequest
	if err := decodeValidated(w, r, contracts.CreateBookingRequestV1, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	receipt, err := h.submitUC.Execute(r.Context(), sess, req.PropertyID, req.StartDate, req.EndDate)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, BookingReceiptResponse{
		BookingID:  receipt.Booking.ID,
		Nights:     receipt.Quote.Nights,
		Subtotal:   receipt.Quote.Subtotal,
		ServiceFee: receipt.Quote.ServiceFee,
		Total:      receipt.Quote.Total,
		Status:     string(receipt.Booking.Status),
	})
}

// Cancel обрабатывает POST /api/v1/bookings/{bookingID}/cancel
func (h *BookingHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":    "CancelBooking",
		"booking_id": bookingID,
	})

	sess, _, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	booking, err := h.cancelUC.Execute(r.Context(), sess, bookingID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toBookingResponse(*booking, nil))
}

// Dashboard обрабатывает GET /api/v1/dashboard
func (h *BookingHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDashboard"})

	sess, _, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	dash, err := h.dashboardUC.Execute(r.Context(), sess)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	resp := DashboardResponse{
		User:             toUserResponse(dash.User),
		UpcomingBookings: toBookingList(dash.UpcomingBookings),
		PastBookings:     toBookingList(dash.PastBookings),
		Favorites:        toPropertyList(dash.Favorites),
	}
	if dash.Listings != nil {
		resp.Listings = toPropertyList(dash.Listings)
	}
	RespondWithJSON(w, http.StatusOK, resp)
}
