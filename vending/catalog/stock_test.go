// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockDecrement(t *testing.T) {
	ledger := NewStockLedger(2)
	assert.Equal(t, 2, ledger.Available())
	ledger.Decrement()
	assert.Equal(t, 1, ledger.Available())
	ledger.Decrement()
	assert.Equal(t, 0, ledger.Available())
}

func TestStockNeverGoesNegative(t *testing.T) {
	ledger := NewStockLedger(0)
	ledger.Decrement()
	assert.Equal(t, 0, ledger.Available())

	ledger = NewStockLedger(-5)
	assert.Equal(t, 0, ledger.Available())
}
