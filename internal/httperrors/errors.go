// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly reporting for trace server
// connectivity failures. It detects the common transport error shapes
// (refused connection, timeout, DNS) and prints targeted guidance naming
// the server address, so the user is not left with a raw dial error.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Format prints a user-friendly message for a transport error and returns
// a wrapped error carrying the technical detail for the exit path.
func Format(err error, serverURL string) error {
	if err == nil {
		return nil
	}
	switch {
	case isConnectionRefused(err):
		pterm.Error.Printfln("Trace server at %s refused the connection", serverURL)
		pterm.Println("  • Is the trace server running?")
		pterm.Println("  • Check the --ip and --port flags (or the saved defaults)")
	case isTimeout(err):
		pterm.Error.Printfln("Trace server at %s did not respond in time", serverURL)
		pterm.Println("  • The server may be busy indexing a large trace")
		pterm.Println("  • Try again in a few moments")
	case isDNS(err):
		pterm.Error.Printfln("Cannot resolve trace server host in %s", serverURL)
		pterm.Println("  • Check the --ip flag for typos")
	default:
		pterm.Error.Printfln("Cannot reach trace server at %s", serverURL)
	}
	return fmt.Errorf("trace server unreachable: %w", err)
}

func isConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

func isDNS(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
