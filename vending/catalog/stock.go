// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import "sync"

// StockLedger counts the physically dispensable tickets left in the
// machine. Stock is only consumed: dispensing decrements the count and
// cancellation never restores it. The count never goes negative.
type StockLedger struct {
	mutex sync.Mutex
	count int
}

// NewStockLedger returns a ledger loaded with count tickets. Negative
// counts are clamped to zero.
func NewStockLedger(count int) *StockLedger {
	if count < 0 {
		count = 0
	}
	return &StockLedger{count: count}
}

// Available returns the number of dispensable tickets.
func (s *StockLedger) Available() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.count
}

// Decrement consumes one ticket. At zero it is a no-op.
func (s *StockLedger) Decrement() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.count > 0 {
		s.count--
	}
}
