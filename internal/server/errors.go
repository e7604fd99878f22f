// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

// errNoServersAreCreated rejects a configuration that enables neither the
// HTTP nor the gRPC transport.
var errNoServersAreCreated = errors.New("no transport servers configured")
