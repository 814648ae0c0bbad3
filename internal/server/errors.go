// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrServe is returned by RunServer when the HTTP server stops for any
	// reason other than a requested shutdown.
	ErrServe = errors.New("http server failed")
)
