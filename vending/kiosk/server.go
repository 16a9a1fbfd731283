// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package kiosk wires one vending session to its collaborators and logs the
// effects the session produces. It is the driving layer around the core
// state machine.
package kiosk

import (
	"vendkiosk/vending/catalog"
	"vendkiosk/vending/core"
	"vendkiosk/vending/core/statejson"

	log "github.com/sirupsen/logrus"
)

// VendServer drives a single vending machine instance: one session, one
// price catalog and one stock ledger for the machine's whole lifetime.
type VendServer struct {
	session *core.Session
	catalog *catalog.PriceCatalog
	stock   *catalog.StockLedger
}

// NewVendServer builds a machine with the given price list and initial
// ticket stock.
func NewVendServer(prices map[string]float64, initialStock int) *VendServer {
	priceCatalog := catalog.New(prices)
	stock := catalog.NewStockLedger(initialStock)
	return &VendServer{
		session: core.NewSession(priceCatalog, stock),
		catalog: priceCatalog,
		stock:   stock,
	}
}

// Select forwards a ticket selection to the session.
func (s *VendServer) Select(ticketType string) core.Effect {
	return s.logEffect("select", s.session.Select(ticketType))
}

// Pay forwards an inserted payment to the session.
func (s *VendServer) Pay(amount float64) core.Effect {
	return s.logEffect("pay", s.session.Pay(amount))
}

// Cancel forwards a cancellation to the session.
func (s *VendServer) Cancel() core.Effect {
	return s.logEffect("cancel", s.session.Cancel())
}

// Dispense forwards a dispense request to the session.
func (s *VendServer) Dispense() core.Effect {
	return s.logEffect("dispense", s.session.Dispense())
}

// InternalState returns a description of the machine for debugging purposes
func (s *VendServer) InternalState() *statejson.MachineDescription {
	return &statejson.MachineDescription{
		Session:     s.session.Description(),
		Stock:       s.stock.Available(),
		Prices:      s.catalog.Prices(),
		TicketTypes: s.catalog.Types(),
	}
}

func (s *VendServer) logEffect(op string, effect core.Effect) core.Effect {
	entry := log.WithField("state", effect.StateAfter.Name())
	if effect.HasRefund {
		entry = entry.WithField("refund", effect.Refund)
	}
	entry.Infof("%s: %s", op, effect.Notice)
	return effect
}

// SetLogLevel sets the log level for internal logging. Needs to be called
// very early during startup to configure logs emitted during initialization
func SetLogLevel(logLevel string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	log.SetLevel(level)
}
