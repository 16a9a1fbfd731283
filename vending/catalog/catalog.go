// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog provides the priced ticket catalog and the stock ledger
// consumed by the vending session.
package catalog

import (
	"math"
	"sort"
)

// Unavailable is the price reported for ticket types missing from the
// catalog. It is an unreachable payment threshold rather than an error: a
// transaction holding an unknown selection can only leave AwaitingPayment
// through cancellation.
var Unavailable = math.Inf(1)

// PriceCatalog maps ticket type names to unit prices. The mapping is fixed
// at machine construction.
type PriceCatalog struct {
	prices map[string]float64
}

// New returns a PriceCatalog holding a copy of the given price list.
func New(prices map[string]float64) *PriceCatalog {
	copied := make(map[string]float64, len(prices))
	for ticketType, price := range prices {
		copied[ticketType] = price
	}
	return &PriceCatalog{prices: copied}
}

// Lookup returns the unit price for ticketType, or Unavailable when the
// type is not in the catalog.
func (c *PriceCatalog) Lookup(ticketType string) float64 {
	price, found := c.prices[ticketType]
	if !found {
		return Unavailable
	}
	return price
}

// Prices returns a copy of the price list.
func (c *PriceCatalog) Prices() map[string]float64 {
	copied := make(map[string]float64, len(c.prices))
	for ticketType, price := range c.prices {
		copied[ticketType] = price
	}
	return copied
}

// Types returns the catalog's ticket types in sorted order.
func (c *PriceCatalog) Types() []string {
	types := make([]string, 0, len(c.prices))
	for ticketType := range c.prices {
		types = append(types, ticketType)
	}
	sort.Strings(types)
	return types
}
