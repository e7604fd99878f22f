// SPDX-License-Identifier: Apache-2.0

package client

// Client is the lifecycle contract of a runnable client application: one
// blocking Run call that covers the whole process lifetime.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}
