// Package metrics exposes counters for background-handler failures. The
// handlers log and swallow their errors on purpose (the triggering event has
// no user waiting on it), so these counters are the only way to notice that
// failures are happening at all. Exposed via expvar on the default mux.
package metrics

import "expvar"

var (
	QuoteNumberFailures  = expvar.NewInt("quote_number_assign_failures")
	ClientNumberFailures = expvar.NewInt("client_number_assign_failures")
	CascadeFailures      = expvar.NewInt("approval_cascade_failures")
	StreamDecodeFailures = expvar.NewInt("stream_decode_failures")
)
