// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Full purchase: select, pay in two installments, dispense, acknowledge.
func TestStandardPurchaseScenario(t *testing.T) {
	session, ledger := newTestSession(100)

	effect := session.Select("Standard")
	assert.Equal(t, StateAwaitingPayment, effect.StateAfter)

	effect = session.Pay(1.00)
	assert.Equal(t, StateAwaitingPayment, effect.StateAfter)
	assert.Equal(t, 1.00, session.AccumulatedAmount())

	effect = session.Pay(0.50)
	assert.Equal(t, StatePaymentComplete, effect.StateAfter)
	assert.Equal(t, 1.50, session.AccumulatedAmount())

	effect = session.Dispense()
	assert.Equal(t, StateDispensed, effect.StateAfter)
	assert.False(t, effect.HasRefund)
	assert.Equal(t, 99, ledger.Available())

	effect = session.Dispense()
	assert.Equal(t, StateIdle, effect.StateAfter)
	assert.Equal(t, "", session.SelectedTicket())
	assert.Equal(t, 0.0, session.AccumulatedAmount())
}

// Partial payment below the price is not refunded on cancel; the amount is
// simply reset.
func TestCancelBeforeFullPaymentScenario(t *testing.T) {
	session, ledger := newTestSession(100)

	session.Select("VIP")
	session.Pay(1.00)

	effect := session.Cancel()
	assert.Equal(t, StateCanceled, effect.StateAfter)
	assert.False(t, effect.HasRefund)
	assert.Equal(t, 0.0, session.AccumulatedAmount())
	assert.Equal(t, 100, ledger.Available())

	// a new selection restarts the transaction from Canceled
	session.Select("VIP")
	session.Pay(3.00)
	effect = session.Dispense()
	assert.Equal(t, StateDispensed, effect.StateAfter)
	assert.Equal(t, 99, ledger.Available())
}

// Unknown ticket types price at an unreachable threshold, so payment can
// never complete and the only way out is cancellation.
func TestUnknownTicketTypeScenario(t *testing.T) {
	session, ledger := newTestSession(100)

	effect := session.Select("Gold")
	assert.Equal(t, StateAwaitingPayment, effect.StateAfter)

	session.Pay(1000000.00)
	assert.Equal(t, StateAwaitingPayment, session.State())

	effect = session.Dispense()
	assert.Equal(t, NoticeInsufficientFunds, effect.Notice)
	assert.Equal(t, StateAwaitingPayment, session.State())
	assert.Equal(t, 100, ledger.Available())

	effect = session.Cancel()
	assert.Equal(t, StateCanceled, effect.StateAfter)
	assert.Equal(t, 0.0, session.AccumulatedAmount())
}

// Switching the selection mid-payment carries the accumulated amount over
// to the new ticket type.
func TestSelectionCarryOverScenario(t *testing.T) {
	session, _ := newTestSession(100)

	session.Select("VIP")
	session.Pay(1.00)
	session.Select("Student")
	assert.Equal(t, 1.00, session.AccumulatedAmount())

	// 1.00 already exceeds the Student price of 0.75
	effect := session.Pay(0.01)
	assert.Equal(t, StatePaymentComplete, effect.StateAfter)

	effect = session.Dispense()
	assert.True(t, effect.HasRefund)
	assert.InDelta(t, 0.26, effect.Refund, 1e-9)
}

// The accumulated amount is zero whenever the session is Idle or Canceled,
// across a long mixed event sequence.
func TestAmountResetInvariantScenario(t *testing.T) {
	session, _ := newTestSession(100)

	check := func() {
		if session.State() == StateIdle || session.State() == StateCanceled {
			assert.Equal(t, 0.0, session.AccumulatedAmount())
		}
		assert.True(t, session.AccumulatedAmount() >= 0)
	}

	events := []func() Effect{
		func() Effect { return session.Pay(1.00) },
		func() Effect { return session.Select("Standard") },
		func() Effect { return session.Pay(-2.00) },
		func() Effect { return session.Pay(0.75) },
		func() Effect { return session.Cancel() },
		func() Effect { return session.Cancel() },
		func() Effect { return session.Select("Student") },
		func() Effect { return session.Pay(1.00) },
		func() Effect { return session.Dispense() },
		func() Effect { return session.Dispense() },
		func() Effect { return session.Dispense() },
	}
	for _, fire := range events {
		fire()
		check()
	}
	assert.Equal(t, StateIdle, session.State())
}
