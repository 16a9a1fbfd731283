// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package library is the catalog/reservation subsystem bundled with the
// vending machine. It is deliberately plain in-memory data management; the
// interesting transactional behavior lives in vending/core.
package library

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CatalogService keeps track of registered users, books, branches and
// reservations.
type CatalogService interface {
	RegisterReader(name, email string) *User
	RegisterLibrarian(name, email string) *User
	RegisterAdmin(name, email string) *User
	FindUser(id uuid.UUID) (*User, bool)

	AddBook(title, author, genre string, copies int) *Book
	RemoveBook(id uuid.UUID) error
	FindBook(id uuid.UUID) (*Book, bool)
	SearchBooks(title, author, genre string) []*Book

	AddBranch(name, address string) *Branch
	RemoveBranch(id uuid.UUID) error
	Branches() []*Branch

	CreateReservation(readerID, bookID, branchID uuid.UUID) (*Reservation, error)
	CancelReservation(id uuid.UUID) error
	ActiveReservations() []*Reservation
	ReaderHistory(readerID uuid.UUID) ([]*Reservation, error)
	TotalReservations() int
	PopularBooks(limit int) []*Book
}

type catalogServiceImpl struct {
	mutex        *sync.Mutex
	users        map[uuid.UUID]*User
	books        map[uuid.UUID]*Book
	branches     map[uuid.UUID]*Branch
	reservations map[uuid.UUID]*Reservation
	history      map[uuid.UUID][]uuid.UUID
}

// NewCatalogService returns an empty in-memory catalog.
func NewCatalogService() CatalogService {
	return &catalogServiceImpl{
		mutex:        &sync.Mutex{},
		users:        make(map[uuid.UUID]*User),
		books:        make(map[uuid.UUID]*Book),
		branches:     make(map[uuid.UUID]*Branch),
		reservations: make(map[uuid.UUID]*Reservation),
		history:      make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *catalogServiceImpl) registerUser(name, email string, role Role) *User {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	user := &User{ID: uuid.New(), Name: name, Email: email, Role: role}
	s.users[user.ID] = user
	copied := *user
	return &copied
}

func (s *catalogServiceImpl) RegisterReader(name, email string) *User {
	return s.registerUser(name, email, RoleReader)
}

func (s *catalogServiceImpl) RegisterLibrarian(name, email string) *User {
	return s.registerUser(name, email, RoleLibrarian)
}

func (s *catalogServiceImpl) RegisterAdmin(name, email string) *User {
	return s.registerUser(name, email, RoleAdmin)
}

func (s *catalogServiceImpl) FindUser(id uuid.UUID) (*User, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	user, found := s.users[id]
	if !found {
		return nil, false
	}
	copied := *user
	return &copied, true
}

func (s *catalogServiceImpl) AddBook(title, author, genre string, copies int) *Book {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if copies < 0 {
		copies = 0
	}
	book := &Book{ID: uuid.New(), Title: title, Author: author, Genre: genre, TotalCopies: copies}
	s.books[book.ID] = book
	copied := *book
	return &copied
}

func (s *catalogServiceImpl) RemoveBook(id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, found := s.books[id]; !found {
		return ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *catalogServiceImpl) FindBook(id uuid.UUID) (*Book, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	book, found := s.books[id]
	if !found {
		return nil, false
	}
	copied := *book
	return &copied, true
}

// SearchBooks filters by case-insensitive substring match; empty filters
// match everything. Results are sorted by title for stable output.
func (s *catalogServiceImpl) SearchBooks(title, author, genre string) []*Book {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	matches := make([]*Book, 0)
	for _, book := range s.books {
		if matchesFilter(book.Title, title) && matchesFilter(book.Author, author) && matchesFilter(book.Genre, genre) {
			copied := *book
			matches = append(matches, &copied)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Title < matches[j].Title })
	return matches
}

func matchesFilter(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func (s *catalogServiceImpl) AddBranch(name, address string) *Branch {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	branch := &Branch{ID: uuid.New(), Name: name, Address: address}
	s.branches[branch.ID] = branch
	copied := *branch
	return &copied
}

func (s *catalogServiceImpl) RemoveBranch(id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, found := s.branches[id]; !found {
		return ErrBranchNotFound
	}
	delete(s.branches, id)
	return nil
}

func (s *catalogServiceImpl) Branches() []*Branch {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	branches := make([]*Branch, 0, len(s.branches))
	for _, branch := range s.branches {
		copied := *branch
		branches = append(branches, &copied)
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches
}

// CreateReservation consumes one copy of the book and appends the
// reservation to the reader's history.
func (s *catalogServiceImpl) CreateReservation(readerID, bookID, branchID uuid.UUID) (*Reservation, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	reader, found := s.users[readerID]
	if !found || reader.Role != RoleReader {
		return nil, ErrReaderNotFound
	}
	book, found := s.books[bookID]
	if !found {
		return nil, ErrBookNotFound
	}
	if _, found := s.branches[branchID]; !found {
		return nil, ErrBranchNotFound
	}
	if book.TotalCopies <= 0 {
		return nil, ErrNoCopiesAvailable
	}

	book.TotalCopies--
	reservation := &Reservation{
		ID:        uuid.New(),
		ReaderID:  readerID,
		BookID:    bookID,
		BranchID:  branchID,
		CreatedAt: time.Now(),
		Active:    true,
	}
	s.reservations[reservation.ID] = reservation
	s.history[readerID] = append(s.history[readerID], reservation.ID)

	copied := *reservation
	return &copied, nil
}

// CancelReservation deactivates the reservation and returns the book copy.
func (s *catalogServiceImpl) CancelReservation(id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	reservation, found := s.reservations[id]
	if !found {
		return ErrReservationNotFound
	}
	if !reservation.Active {
		return ErrReservationNotActive
	}

	reservation.Active = false
	if book, found := s.books[reservation.BookID]; found {
		book.TotalCopies++
	}
	return nil
}

func (s *catalogServiceImpl) ActiveReservations() []*Reservation {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	active := make([]*Reservation, 0)
	for _, reservation := range s.reservations {
		if reservation.Active {
			copied := *reservation
			active = append(active, &copied)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].CreatedAt.Before(active[j].CreatedAt) })
	return active
}

func (s *catalogServiceImpl) ReaderHistory(readerID uuid.UUID) ([]*Reservation, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	reader, found := s.users[readerID]
	if !found || reader.Role != RoleReader {
		return nil, ErrReaderNotFound
	}

	reservations := make([]*Reservation, 0, len(s.history[readerID]))
	for _, reservationID := range s.history[readerID] {
		if reservation, found := s.reservations[reservationID]; found {
			copied := *reservation
			reservations = append(reservations, &copied)
		}
	}
	return reservations, nil
}

// TotalReservations counts reservations ever created, for analytics.
func (s *catalogServiceImpl) TotalReservations() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.reservations)
}

// PopularBooks returns up to limit books ordered by how often each has been
// reserved, most reserved first. Canceled reservations still count; books
// never reserved or since removed do not appear.
func (s *catalogServiceImpl) PopularBooks(limit int) []*Book {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	counts := make(map[uuid.UUID]int)
	for _, reservation := range s.reservations {
		counts[reservation.BookID]++
	}

	popular := make([]*Book, 0, len(counts))
	for bookID := range counts {
		if book, found := s.books[bookID]; found {
			copied := *book
			popular = append(popular, &copied)
		}
	}
	sort.Slice(popular, func(i, j int) bool {
		if counts[popular[i].ID] != counts[popular[j].ID] {
			return counts[popular[i].ID] > counts[popular[j].ID]
		}
		return popular[i].Title < popular[j].Title
	})
	if limit > 0 && len(popular) > limit {
		popular = popular[:limit]
	}
	return popular
}
