package handlers

import "pos-backend/store"

// Handler carries the storage handle shared by all routes.
type Handler struct {
	Store store.Store
}

func New(s store.Store) *Handler {
	return &Handler{Store: s}
}
