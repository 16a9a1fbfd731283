// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"net/http"

	"vendkiosk/vending/kiosk"
)

func CancelHandler(w http.ResponseWriter, r *http.Request, s *kiosk.VendServer) {
	renderEffect(w, r, s.Cancel())
}
