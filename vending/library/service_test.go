// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package library

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUsersAssignsRoles(t *testing.T) {
	svc := NewCatalogService()

	reader := svc.RegisterReader("Alice", "alice@example.com")
	librarian := svc.RegisterLibrarian("Bob", "bob@example.com")
	admin := svc.RegisterAdmin("Carol", "carol@example.com")

	assert.Equal(t, RoleReader, reader.Role)
	assert.Equal(t, RoleLibrarian, librarian.Role)
	assert.Equal(t, RoleAdmin, admin.Role)

	found, ok := svc.FindUser(reader.ID)
	require.True(t, ok)
	assert.Equal(t, "Alice", found.Name)

	_, ok = svc.FindUser(uuid.New())
	assert.False(t, ok)
}

func TestSearchBooksFilters(t *testing.T) {
	svc := NewCatalogService()
	svc.AddBook("The Go Programming Language", "Donovan", "Reference", 3)
	svc.AddBook("Go Web Programming", "Chang", "Reference", 2)
	svc.AddBook("Dune", "Herbert", "SciFi", 1)

	books := svc.SearchBooks("go", "", "")
	require.Len(t, books, 2)
	assert.Equal(t, "Go Web Programming", books[0].Title)
	assert.Equal(t, "The Go Programming Language", books[1].Title)

	books = svc.SearchBooks("", "herbert", "")
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)

	books = svc.SearchBooks("", "", "reference")
	assert.Len(t, books, 2)

	books = svc.SearchBooks("", "", "")
	assert.Len(t, books, 3)
}

func TestReservationLifecycle(t *testing.T) {
	svc := NewCatalogService()
	reader := svc.RegisterReader("Alice", "alice@example.com")
	book := svc.AddBook("Dune", "Herbert", "SciFi", 1)
	branch := svc.AddBranch("Central", "1 Main St")

	reservation, err := svc.CreateReservation(reader.ID, book.ID, branch.ID)
	require.NoError(t, err)
	assert.True(t, reservation.Active)

	// the single copy is consumed
	found, _ := svc.FindBook(book.ID)
	assert.Equal(t, 0, found.TotalCopies)

	_, err = svc.CreateReservation(reader.ID, book.ID, branch.ID)
	assert.Equal(t, ErrNoCopiesAvailable, err)

	require.NoError(t, svc.CancelReservation(reservation.ID))
	found, _ = svc.FindBook(book.ID)
	assert.Equal(t, 1, found.TotalCopies)

	// canceling twice is rejected, and the copy is not restored twice
	assert.Equal(t, ErrReservationNotActive, svc.CancelReservation(reservation.ID))
	found, _ = svc.FindBook(book.ID)
	assert.Equal(t, 1, found.TotalCopies)

	assert.Empty(t, svc.ActiveReservations())
	assert.Equal(t, 1, svc.TotalReservations())
}

func TestReservationValidation(t *testing.T) {
	svc := NewCatalogService()
	librarian := svc.RegisterLibrarian("Bob", "bob@example.com")
	book := svc.AddBook("Dune", "Herbert", "SciFi", 1)
	branch := svc.AddBranch("Central", "1 Main St")

	// only users with the reader role may reserve
	_, err := svc.CreateReservation(librarian.ID, book.ID, branch.ID)
	assert.Equal(t, ErrReaderNotFound, err)

	reader := svc.RegisterReader("Alice", "alice@example.com")

	_, err = svc.CreateReservation(reader.ID, uuid.New(), branch.ID)
	assert.Equal(t, ErrBookNotFound, err)

	_, err = svc.CreateReservation(reader.ID, book.ID, uuid.New())
	assert.Equal(t, ErrBranchNotFound, err)

	assert.Equal(t, ErrReservationNotFound, svc.CancelReservation(uuid.New()))
}

func TestReaderHistoryKeepsCanceledReservations(t *testing.T) {
	svc := NewCatalogService()
	reader := svc.RegisterReader("Alice", "alice@example.com")
	book := svc.AddBook("Dune", "Herbert", "SciFi", 2)
	branch := svc.AddBranch("Central", "1 Main St")

	first, err := svc.CreateReservation(reader.ID, book.ID, branch.ID)
	require.NoError(t, err)
	_, err = svc.CreateReservation(reader.ID, book.ID, branch.ID)
	require.NoError(t, err)
	require.NoError(t, svc.CancelReservation(first.ID))

	history, err := svc.ReaderHistory(reader.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Len(t, svc.ActiveReservations(), 1)

	_, err = svc.ReaderHistory(uuid.New())
	assert.Equal(t, ErrReaderNotFound, err)
}

func TestPopularBooksRanking(t *testing.T) {
	svc := NewCatalogService()
	reader := svc.RegisterReader("Alice", "alice@example.com")
	branch := svc.AddBranch("Central", "1 Main St")

	dune := svc.AddBook("Dune", "Herbert", "SciFi", 5)
	golang := svc.AddBook("The Go Programming Language", "Donovan", "Reference", 5)
	svc.AddBook("Never Reserved", "Nobody", "Misc", 5)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateReservation(reader.ID, dune.ID, branch.ID)
		require.NoError(t, err)
	}
	reservation, err := svc.CreateReservation(reader.ID, golang.ID, branch.ID)
	require.NoError(t, err)
	// canceled reservations still count toward popularity
	require.NoError(t, svc.CancelReservation(reservation.ID))

	popular := svc.PopularBooks(10)
	require.Len(t, popular, 2)
	assert.Equal(t, "Dune", popular[0].Title)
	assert.Equal(t, "The Go Programming Language", popular[1].Title)

	popular = svc.PopularBooks(1)
	require.Len(t, popular, 1)
	assert.Equal(t, "Dune", popular[0].Title)
}

func TestRemoveBookAndBranch(t *testing.T) {
	svc := NewCatalogService()
	book := svc.AddBook("Dune", "Herbert", "SciFi", 1)
	branch := svc.AddBranch("Central", "1 Main St")

	require.NoError(t, svc.RemoveBook(book.ID))
	assert.Equal(t, ErrBookNotFound, svc.RemoveBook(book.ID))

	require.NoError(t, svc.RemoveBranch(branch.ID))
	assert.Equal(t, ErrBranchNotFound, svc.RemoveBranch(branch.ID))
}
