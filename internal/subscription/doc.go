// Package subscription implements the three-level subscription tier model
// and the session store that answers content-visibility queries.
//
// Redaction here is cosmetic display gating, NOT an access-control
// mechanism: the gated values are already present in process memory and the
// placeholders only drive presentation. Nothing in this package should be
// relied on as a security boundary.
package subscription
