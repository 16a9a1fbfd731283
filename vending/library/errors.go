// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package library

import "errors"

var ErrReaderNotFound = errors.New("ReaderNotFound")
var ErrBookNotFound = errors.New("BookNotFound")
var ErrBranchNotFound = errors.New("BranchNotFound")
var ErrNoCopiesAvailable = errors.New("NoCopiesAvailable")

var ErrReservationNotFound = errors.New("ReservationNotFound")
var ErrReservationNotActive = errors.New("ReservationNotActive")
