// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"math"
	"net/http"

	"vendkiosk/vending/kiosk"
	"vendkiosk/vending/rendering"

	log "github.com/sirupsen/logrus"
)

type payRequest struct {
	Amount float64 `json:"amount"`
}

func PayHandler(w http.ResponseWriter, r *http.Request, s *kiosk.VendServer) {
	req := payRequest{}
	if err := readBodyJSON(r, &req); err != nil {
		log.WithError(err).Error("Failed to parse pay request")
		rendering.RenderBadRequestWithTypeMsg(w, r, rendering.ErrorTypeInvalidRequest, "invalid pay payload: %s", err)
		return
	}

	// non-positive amounts are resolved by the session itself; non-finite
	// values never represent money and are stopped at the boundary
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		rendering.RenderBadRequestWithTypeMsg(w, r, rendering.ErrorTypeInvalidRequest, "amount must be a finite number")
		return
	}

	renderEffect(w, r, s.Pay(req.Amount))
}
