// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"net/http"

	"vendkiosk/vending/core"
	"vendkiosk/vending/rendering"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func readBodyJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func renderEffect(w http.ResponseWriter, r *http.Request, effect core.Effect) {
	if err := rendering.RenderJSON(http.StatusOK, w, r, rendering.NewEffectResponse(effect)); err != nil {
		log.WithError(err).Error("Failed to render effect response")
		rendering.RenderInternalServerError(w, r)
	}
}
