package rest

import (
	"context"
	"net/http"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/port/usecases_port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
	"github.com/go-chi/chi/v5"
)

type WishlistHandlers struct {
	getUC    usecases_port.GetWishlistUseCasePort
	addUC    usecases_port.AddToWishlistUseCasePort
	removeUC usecases_port.RemoveFromWishlistUseCasePort
}

func NewWishlistHandlers(
	getUC usecases_port.GetWishlistUseCasePort,
	addUC usecases_port.AddToWishlistUseCasePort,
	removeUC usecases_port.RemoveFromWishlistUseCasePort,
) *WishlistHandlers {
	return &WishlistHandlers{getUC: getUC, addUC: addUC, removeUC: removeUC}
}

// Get обрабатывает GET /api/v1/wishlist
func (h *WishlistHandlers) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetWishlist"})

	sess, _, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	view, err := h.getUC.Execute(r.Context(), sess)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, WishlistResponse{
		PropertyIDs: nonNilStrings(view.PropertyIDs),
		Properties:  toPropertyList(view.Properties),
	})
}

// Add обрабатывает POST /api/v1/wishlist/{propertyID}
func (h *WishlistHandlers) Add(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "AddToWishlist", h.addUC.Execute)
}

// Remove обрабатывает DELETE /api/v1/wishlist/{propertyID}
func (h *WishlistHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "RemoveFromWishlist", h.removeUC.Execute)
}

func (h *WishlistHandlers) mutate(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	execute func(ctx context.Context, sess *session.Session, propertyID string) ([]string, error),
) {
	propertyID := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     name,
		"property_id": propertyID,
	})

	sess, _, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	wishlist, err := execute(r.Context(), sess, propertyID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, WishlistResponse{PropertyIDs: nonNilStrings(wishlist)})
}
