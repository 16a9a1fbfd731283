// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"vendkiosk/vending/kiosk"
	"vendkiosk/vending/kiosk/standalone"
	"vendkiosk/vending/library"
	"vendkiosk/vending/logging"

	log "github.com/sirupsen/logrus"
)

type options struct {
	LogLevel     string   `long:"log-level" default:"info" description:"log level"`
	VendAddr     string   `long:"vend-addr" default:"0.0.0.0:8080" description:"listen address for the vending API"`
	LibraryAddr  string   `long:"library-addr" default:"0.0.0.0:8081" description:"listen address for the library API"`
	InitialStock int      `long:"initial-stock" default:"100" description:"tickets loaded into the machine at startup"`
	Prices       []string `long:"price" description:"ticket price override, NAME:VALUE (repeatable)"`
}

func main() {
	opts := getCLIArgs()
	logging.SetOutput(os.Stdout)
	kiosk.SetLogLevel(opts.LogLevel)

	prices, err := priceList(opts.Prices)
	if err != nil {
		log.WithError(err).Fatal("Failed to parse price overrides:", opts.Prices)
	}

	vendSrv := kiosk.NewVendServer(prices, opts.InitialStock)
	librarySvc := library.NewCatalogService()

	var group errgroup.Group
	group.Go(func() error { return startHTTPServer(opts.VendAddr, standalone.NewHTTPRouter(vendSrv)) })
	group.Go(func() error { return startHTTPServer(opts.LibraryAddr, library.NewLibraryRouter(librarySvc)) })

	if err := group.Wait(); err != nil {
		log.Panic(err)
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(os.Args); err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}

	return opts
}

// priceList starts from the sample ticket types the machine ships with and
// applies any NAME:VALUE overrides.
func priceList(overrides []string) (map[string]float64, error) {
	prices := map[string]float64{
		"Standard": 1.50,
		"VIP":      3.00,
		"Student":  0.75,
	}

	for _, override := range overrides {
		parts := strings.SplitN(override, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed price override %q, want NAME:VALUE", override)
		}
		price, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("malformed price value in %q", override)
		}
		prices[parts[0]] = price
	}

	return prices, nil
}
