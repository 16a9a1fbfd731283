// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"net/http"

	"vendkiosk/vending/kiosk"
	"vendkiosk/vending/rendering"

	log "github.com/sirupsen/logrus"
)

type selectRequest struct {
	TicketType string `json:"ticketType"`
}

func SelectHandler(w http.ResponseWriter, r *http.Request, s *kiosk.VendServer) {
	req := selectRequest{}
	if err := readBodyJSON(r, &req); err != nil {
		log.WithError(err).Error("Failed to parse select request")
		rendering.RenderBadRequestWithTypeMsg(w, r, rendering.ErrorTypeInvalidRequest, "invalid select payload: %s", err)
		return
	}

	if req.TicketType == "" {
		rendering.RenderBadRequestWithTypeMsg(w, r, rendering.ErrorTypeInvalidRequest, "ticketType is required")
		return
	}

	renderEffect(w, r, s.Select(req.TicketType))
}
