// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package statejson

import (
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StateDescription ...
type StateDescription struct {
	Name         string `json:"name"`
	LastModified int64  `json:"lastModified"`
}

// SessionDescription ...
type SessionDescription struct {
	State             StateDescription `json:"state"`
	SelectedTicket    string           `json:"selectedTicket,omitempty"`
	AccumulatedAmount float64          `json:"accumulatedAmount"`
}

// MachineDescription describes the machine's session, stock and price list
// for debugging purposes. TicketTypes is the sorted catalog key list, kept
// separate because JSON object key order is not stable.
type MachineDescription struct {
	Session     SessionDescription `json:"session"`
	Stock       int                `json:"stock"`
	Prices      map[string]float64 `json:"prices"`
	TicketTypes []string           `json:"ticketTypes"`
}

func (s *MachineDescription) AsJSON() []byte {
	bytes, err := json.Marshal(s)
	if err != nil {
		log.Panicf("Failed to marshall machine state: %s", err)
	}
	return bytes
}
