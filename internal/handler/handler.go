// Package handler translates HTTP requests into account and favourite store
// calls and serializes the results in the response shapes the frontend
// expects.
package handler

import (
	"github.com/vcdice-69/Parked-Up/internal/store"
	"github.com/vcdice-69/Parked-Up/prometheus"
)

// Handler carries the stores the endpoints operate on. Stores are injected so
// tests can substitute in-memory fakes.
type Handler struct {
	accounts   store.AccountStore
	favourites store.FavouriteStore
}

// New returns a Handler using the given stores.
func New(accounts store.AccountStore, favourites store.FavouriteStore) *Handler {
	return &Handler{accounts: accounts, favourites: favourites}
}

// updateAccountCount refreshes the registered accounts gauge
func (h *Handler) updateAccountCount() {
	count, err := h.accounts.Count()
	if err != nil {
		return
	}
	prometheus.UpdateRegisteredAccounts(int(count))
}
