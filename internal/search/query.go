// SPDX-License-Identifier: Apache-2.0

package search

import (
	"net/url"
	"strings"
)

// ValidateQuery reports whether query contains any non-whitespace content.
func ValidateQuery(query string) bool {
	return strings.TrimSpace(query) != ""
}

// NormalizeQuery trims leading and trailing whitespace and collapses every
// internal whitespace run to a single space.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// EncodeQueryForURL normalizes query and percent-encodes it for use as a
// URL query parameter value.
func EncodeQueryForURL(query string) string {
	return url.QueryEscape(NormalizeQuery(query))
}

// DecodeQueryFromURL reverses [EncodeQueryForURL]. A malformed
// percent-encoding is recovered locally: the original encoded string is
// returned unchanged instead of an error.
func DecodeQueryFromURL(encoded string) string {
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return encoded
	}

	return decoded
}
