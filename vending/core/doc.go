// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package core implements the vending session state machine.

# States

A session is always in exactly one of five states:

	Idle -> AwaitingPayment -> PaymentComplete -> Dispensed -> Idle
	           |                    |
	           +----> Canceled <----+

Idle is the initial state. A transaction starts when a ticket is selected
and ends when the session returns to Idle, either through Dispensed
(acknowledged by a second Dispense event) or through Canceled (a new
selection restarts payment from there).

# Events

Each external action (Select, Pay, Cancel, Dispense) is dispatched to a
per-state handler which performs the transition and produces an Effect.
Events that are not applicable in the current state are reported, not fatal:
the session stays where it is and the effect carries a descriptive notice.

# Collaborators

The session consumes a PriceCatalog and a StockLedger. Both are injected at
construction; the catalog is read-only and the ledger is written only by the
session's dispense transition.
*/
package core
