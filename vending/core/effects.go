// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

// Notices reported for events that are not applicable in the session's
// current state, and for rejected payment amounts.
const (
	NoticeOutOfStock        = "no tickets in stock"
	NoticeSelectFirst       = "select a ticket first"
	NoticeNothingToCancel   = "nothing to cancel"
	NoticeSelectAndPayFirst = "select and pay first"
	NoticeInsufficientFunds = "not enough money inserted"
	NoticeSelectionLocked   = "cannot change selection after full payment, cancel for a refund first"
	NoticeFinishing         = "please wait, transaction finishing"
	NoticeAlreadyDispensed  = "cannot cancel, ticket already dispensed"
	NoticeAlreadyCanceled   = "already canceled"
	NoticeCanceled          = "canceled, nothing to dispense"
	NoticeInvalidAmount     = "payment amount must be positive"
	NoticeComplete          = "transaction complete"
)

// Effect is the observable outcome of dispatching one event to the session:
// a display notice, an optional refund amount and the state the session is
// in after the transition. Effects are the only failure channel of the
// machine; there is no error path.
type Effect struct {
	Notice     string
	Refund     float64
	HasRefund  bool
	StateAfter State
}
