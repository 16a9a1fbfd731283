// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

func startHTTPServer(ipport string, handler http.Handler) error {
	srv := &http.Server{
		Addr:    ipport,
		Handler: handler,
	}

	log.Infof("Listening on %s", ipport)
	return srv.ListenAndServe()
}
