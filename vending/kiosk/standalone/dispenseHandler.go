// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"net/http"

	"vendkiosk/vending/kiosk"
)

// DispenseHandler serves both dispense rows of the transition table: the
// dispense itself in PaymentComplete and the acknowledge/reset in Dispensed.
func DispenseHandler(w http.ResponseWriter, r *http.Request, s *kiosk.VendServer) {
	renderEffect(w, r, s.Dispense())
}
