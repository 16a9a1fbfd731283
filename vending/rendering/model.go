// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rendering

import "vendkiosk/vending/core"

// ErrorResponse is a standard error response, providing information about
// the error.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

// StatusResponse is a response returned by the API server, providing status
// information.
type StatusResponse struct {
	Status string `json:"status"`
}

// EffectResponse is the wire form of a vending effect. RefundAmount is
// omitted when the transition reported no refund.
type EffectResponse struct {
	Notice       string   `json:"notice"`
	RefundAmount *float64 `json:"refundAmount,omitempty"`
	StateAfter   string   `json:"stateAfter"`
}

// NewEffectResponse forms an EffectResponse from a session effect.
func NewEffectResponse(effect core.Effect) *EffectResponse {
	response := &EffectResponse{
		Notice:     effect.Notice,
		StateAfter: effect.StateAfter.Name(),
	}
	if effect.HasRefund {
		refund := effect.Refund
		response.RefundAmount = &refund
	}
	return response
}
