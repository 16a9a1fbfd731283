// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package library

import (
	"net/http"

	"github.com/go-chi/chi"
)

// NewLibraryRouter returns the router exposing the catalog service.
func NewLibraryRouter(svc CatalogService) *chi.Mux {
	r := chi.NewRouter()

	r.Post("/library/readers", func(w http.ResponseWriter, r *http.Request) { RegisterReaderHandler(w, r, svc) })
	r.Post("/library/books", func(w http.ResponseWriter, r *http.Request) { AddBookHandler(w, r, svc) })
	r.Get("/library/books", func(w http.ResponseWriter, r *http.Request) { SearchBooksHandler(w, r, svc) })
	r.Get("/library/books/popular", func(w http.ResponseWriter, r *http.Request) { PopularBooksHandler(w, r, svc) })
	r.Post("/library/branches", func(w http.ResponseWriter, r *http.Request) { AddBranchHandler(w, r, svc) })
	r.Post("/library/reservations", func(w http.ResponseWriter, r *http.Request) { ReserveHandler(w, r, svc) })
	r.Delete("/library/reservations/{reservationid}", func(w http.ResponseWriter, r *http.Request) { CancelReservationHandler(w, r, svc) })
	r.Get("/library/reservations", func(w http.ResponseWriter, r *http.Request) { ActiveReservationsHandler(w, r, svc) })
	return r
}
