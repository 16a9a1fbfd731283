// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"sync"
	"time"

	"vendkiosk/vending/core/statejson"
)

// PriceCatalog resolves a ticket type to its unit price. Implementations
// report an unreachable price for unknown types instead of an error, so a
// transaction holding an unknown selection can never complete payment.
type PriceCatalog interface {
	Lookup(ticketType string) float64
}

// StockLedger counts dispensable tickets. Decrement never takes the count
// below zero.
type StockLedger interface {
	Available() int
	Decrement()
}

// State is the session's position in the transaction lifecycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingPayment
	StatePaymentComplete
	StateDispensed
	StateCanceled
)

// Name ...
func (s State) Name() string {
	switch s {
	case StateIdle:
		return IdleStateName
	case StateAwaitingPayment:
		return AwaitingPaymentStateName
	case StatePaymentComplete:
		return PaymentCompleteStateName
	case StateDispensed:
		return DispensedStateName
	case StateCanceled:
		return CanceledStateName
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

type eventKind int

const (
	eventSelect eventKind = iota
	eventPay
	eventCancel
	eventDispense
)

type event struct {
	kind       eventKind
	ticketType string
	amount     float64
}

// Session is the vending state machine over one machine instance. One
// Session persists for the machine's whole operational lifetime; the mutex
// serializes events so that every transition is atomic with respect to the
// accumulated amount and the stock counter.
type Session struct {
	mutex sync.Mutex

	catalog PriceCatalog
	stock   StockLedger

	state             State
	selectedTicket    string
	accumulatedAmount float64
	stateLastModified time.Time
}

// NewSession returns a new Session in Idle.
func NewSession(catalog PriceCatalog, stock StockLedger) *Session {
	return &Session{
		catalog:           catalog,
		stock:             stock,
		state:             StateIdle,
		stateLastModified: time.Now(),
	}
}

// Select dispatches a ticket selection to the current state.
func (s *Session) Select(ticketType string) Effect {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.apply(event{kind: eventSelect, ticketType: ticketType})
}

// Pay dispatches an inserted payment to the current state.
func (s *Session) Pay(amount float64) Effect {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.apply(event{kind: eventPay, amount: amount})
}

// Cancel dispatches a transaction cancellation to the current state.
func (s *Session) Cancel() Effect {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.apply(event{kind: eventCancel})
}

// Dispense dispatches a dispense request to the current state. In Dispensed
// the same event acknowledges the finished transaction and returns the
// session to Idle.
func (s *Session) Dispense() Effect {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.apply(event{kind: eventDispense})
}

// State returns the session's current state.
func (s *Session) State() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state
}

// SelectedTicket returns the currently selected ticket type, empty when no
// selection is held.
func (s *Session) SelectedTicket() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.selectedTicket
}

// AccumulatedAmount returns the running total of payments made during the
// current transaction.
func (s *Session) AccumulatedAmount() float64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.accumulatedAmount
}

// Description returns a session description object for debugging purposes
func (s *Session) Description() statejson.SessionDescription {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return statejson.SessionDescription{
		State: statejson.StateDescription{
			Name:         s.state.Name(),
			LastModified: s.stateLastModified.UnixNano() / int64(time.Millisecond),
		},
		SelectedTicket:    s.selectedTicket,
		AccumulatedAmount: s.accumulatedAmount,
	}
}

// apply performs the transition for one event. Callers must hold the mutex.
func (s *Session) apply(ev event) Effect {
	var effect Effect
	switch s.state {
	case StateIdle:
		effect = s.idle(ev)
	case StateAwaitingPayment:
		effect = s.awaitingPayment(ev)
	case StatePaymentComplete:
		effect = s.paymentComplete(ev)
	case StateDispensed:
		effect = s.dispensed(ev)
	case StateCanceled:
		effect = s.canceled(ev)
	}
	effect.StateAfter = s.state
	s.stateLastModified = time.Now()
	return effect
}

func (s *Session) idle(ev event) Effect {
	switch ev.kind {
	case eventSelect:
		if s.stock.Available() == 0 {
			return Effect{Notice: NoticeOutOfStock}
		}
		s.selectedTicket = ev.ticketType
		s.accumulatedAmount = 0
		s.state = StateAwaitingPayment
		return Effect{Notice: fmt.Sprintf("ticket selected: %s", ev.ticketType)}
	case eventPay:
		return Effect{Notice: NoticeSelectFirst}
	case eventCancel:
		return Effect{Notice: NoticeNothingToCancel}
	default:
		return Effect{Notice: NoticeSelectAndPayFirst}
	}
}

func (s *Session) awaitingPayment(ev event) Effect {
	switch ev.kind {
	case eventSelect:
		// the accumulated amount carries over to the new selection
		s.selectedTicket = ev.ticketType
		return Effect{Notice: fmt.Sprintf("selection changed to: %s", ev.ticketType)}
	case eventPay:
		if ev.amount <= 0 {
			return Effect{Notice: NoticeInvalidAmount}
		}
		s.accumulatedAmount += ev.amount
		if s.accumulatedAmount >= s.catalog.Lookup(s.selectedTicket) {
			s.state = StatePaymentComplete
		}
		return Effect{Notice: fmt.Sprintf("inserted %.2f, total inserted: %.2f", ev.amount, s.accumulatedAmount)}
	case eventCancel:
		s.resetSelection()
		s.state = StateCanceled
		return Effect{Notice: "transaction canceled while waiting for payment"}
	default:
		return Effect{Notice: NoticeInsufficientFunds}
	}
}

func (s *Session) paymentComplete(ev event) Effect {
	switch ev.kind {
	case eventSelect:
		return Effect{Notice: NoticeSelectionLocked}
	case eventPay:
		if ev.amount <= 0 {
			return Effect{Notice: NoticeInvalidAmount}
		}
		s.accumulatedAmount += ev.amount
		return Effect{Notice: fmt.Sprintf("additional %.2f inserted, total: %.2f", ev.amount, s.accumulatedAmount)}
	case eventCancel:
		effect := Effect{Notice: "transaction canceled after full payment, returning funds"}
		s.attachChange(&effect)
		s.resetSelection()
		s.state = StateCanceled
		return effect
	default:
		if s.stock.Available() == 0 {
			return Effect{Notice: "cannot dispense: no tickets left"}
		}
		effect := Effect{Notice: fmt.Sprintf("dispensing ticket: %s", s.selectedTicket)}
		s.stock.Decrement()
		s.attachChange(&effect)
		s.state = StateDispensed
		return effect
	}
}

func (s *Session) dispensed(ev event) Effect {
	switch ev.kind {
	case eventSelect, eventPay:
		return Effect{Notice: NoticeFinishing}
	case eventCancel:
		return Effect{Notice: NoticeAlreadyDispensed}
	default:
		// acknowledge transition: the finished transaction is cleared and
		// the session returns to Idle
		s.resetSelection()
		s.state = StateIdle
		return Effect{Notice: NoticeComplete}
	}
}

func (s *Session) canceled(ev event) Effect {
	switch ev.kind {
	case eventSelect:
		// the accumulated amount is already zero from the cancel reset
		s.selectedTicket = ev.ticketType
		s.state = StateAwaitingPayment
		return Effect{Notice: fmt.Sprintf("ticket selected: %s", ev.ticketType)}
	case eventPay:
		return Effect{Notice: NoticeSelectFirst}
	case eventCancel:
		return Effect{Notice: NoticeAlreadyCanceled}
	default:
		return Effect{Notice: NoticeCanceled}
	}
}

// attachChange reports the change due at this moment, the accumulated amount
// minus the selection's unit price, on the effect. Change is only reported
// when strictly positive; it is an observable effect, not a ledger mutation.
func (s *Session) attachChange(effect *Effect) {
	change := s.accumulatedAmount - s.catalog.Lookup(s.selectedTicket)
	if change > 0 {
		effect.Refund = change
		effect.HasRefund = true
	}
}

func (s *Session) resetSelection() {
	s.selectedTicket = ""
	s.accumulatedAmount = 0
}
