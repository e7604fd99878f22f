// Package server runs the peoplescope API transports.
//
// It owns the lifecycle of the HTTP server and the gRPC server: starting
// whichever transports are configured, waiting on termination signals, and
// shutting all of them down gracefully.
package server
