// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"net/http"

	"vendkiosk/vending/kiosk"

	log "github.com/sirupsen/logrus"
)

func InternalStateHandler(w http.ResponseWriter, r *http.Request, s *kiosk.VendServer) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(s.InternalState().AsJSON()); err != nil {
		log.WithError(err).Error("Failed to write internal state response")
	}
}
