// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package standalone exposes one vending machine over HTTP. Every route is
// synchronous request/response; event serialization happens in the session,
// not here.
package standalone

import (
	"net/http"

	"vendkiosk/vending/kiosk"

	"github.com/go-chi/chi"
)

// NewHTTPRouter returns the router driving a single machine instance.
func NewHTTPRouter(vendSrv *kiosk.VendServer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(accessLogDecorator)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) { PingHandler(w, r) })
	r.Post("/vending/select", func(w http.ResponseWriter, r *http.Request) { SelectHandler(w, r, vendSrv) })
	r.Post("/vending/pay", func(w http.ResponseWriter, r *http.Request) { PayHandler(w, r, vendSrv) })
	r.Post("/vending/cancel", func(w http.ResponseWriter, r *http.Request) { CancelHandler(w, r, vendSrv) })
	r.Post("/vending/dispense", func(w http.ResponseWriter, r *http.Request) { DispenseHandler(w, r, vendSrv) })
	r.Get("/vending/internalState", func(w http.ResponseWriter, r *http.Request) { InternalStateHandler(w, r, vendSrv) })
	return r
}
