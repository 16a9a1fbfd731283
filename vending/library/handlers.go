// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package library

import (
	"net/http"
	"strconv"

	"vendkiosk/vending/rendering"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type registerReaderRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type addBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Copies int    `json:"copies"`
}

type addBranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type reserveRequest struct {
	ReaderID string `json:"readerId"`
	BookID   string `json:"bookId"`
	BranchID string `json:"branchId"`
}

func RegisterReaderHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	req := registerReaderRequest{}
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" {
		renderBadRequest(w, r, "name and email are required")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, svc.RegisterReader(req.Name, req.Email))
}

func AddBookHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	req := addBookRequest{}
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.Title == "" {
		renderBadRequest(w, r, "title is required")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, svc.AddBook(req.Title, req.Author, req.Genre, req.Copies))
}

func SearchBooksHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	query := r.URL.Query()
	books := svc.SearchBooks(query.Get("title"), query.Get("author"), query.Get("genre"))
	render.JSON(w, r, books)
}

func PopularBooksHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			renderBadRequest(w, r, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	render.JSON(w, r, svc.PopularBooks(limit))
}

func AddBranchHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	req := addBranchRequest{}
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.Name == "" {
		renderBadRequest(w, r, "name is required")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, svc.AddBranch(req.Name, req.Address))
}

func ReserveHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	req := reserveRequest{}
	if !decodeRequest(w, r, &req) {
		return
	}

	readerID, err := uuid.Parse(req.ReaderID)
	if err != nil {
		renderBadRequest(w, r, "readerId is not a valid id")
		return
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		renderBadRequest(w, r, "bookId is not a valid id")
		return
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		renderBadRequest(w, r, "branchId is not a valid id")
		return
	}

	reservation, err := svc.CreateReservation(readerID, bookID, branchID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, reservation)
}

func CancelReservationHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	reservationID, err := uuid.Parse(chi.URLParam(r, "reservationid"))
	if err != nil {
		renderBadRequest(w, r, "reservation id is not a valid id")
		return
	}

	if err := svc.CancelReservation(reservationID); err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, &rendering.StatusResponse{Status: "Canceled"})
}

func ActiveReservationsHandler(w http.ResponseWriter, r *http.Request, svc CatalogService) {
	render.JSON(w, r, svc.ActiveReservations())
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.WithError(err).Error("Failed to parse library request")
		renderBadRequest(w, r, "invalid payload")
		return false
	}
	return true
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, &rendering.ErrorResponse{
		ErrorMessage: message,
		ErrorType:    rendering.ErrorTypeInvalidRequest,
	})
}

// renderServiceError maps catalog sentinel errors onto HTTP statuses; the
// sentinel text doubles as the errorType.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusNotFound
	switch err {
	case ErrNoCopiesAvailable, ErrReservationNotActive:
		status = http.StatusConflict
	}

	render.Status(r, status)
	render.JSON(w, r, &rendering.ErrorResponse{
		ErrorMessage: err.Error(),
		ErrorType:    err.Error(),
	})
}
