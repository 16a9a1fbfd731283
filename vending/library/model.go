// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package library

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the three registered user kinds.
type Role string

const (
	RoleReader    Role = "READER"
	RoleLibrarian Role = "LIBRARIAN"
	RoleAdmin     Role = "ADMIN"
)

// User is a registered library member.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// Book holds catalog information plus the count of copies currently
// available for reservation.
type Book struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	TotalCopies int       `json:"totalCopies"`
}

// Branch is a physical pickup location.
type Branch struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// Reservation binds a reader, a book and a pickup branch. Canceling a
// reservation returns the book copy to the catalog.
type Reservation struct {
	ID        uuid.UUID `json:"id"`
	ReaderID  uuid.UUID `json:"readerId"`
	BookID    uuid.UUID `json:"bookId"`
	BranchID  uuid.UUID `json:"branchId"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}
