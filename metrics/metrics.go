// metrics.go - optional instrumentation counters.
//
// The cipher core is a pure, synchronous computation (spec §5) with
// nothing resembling a server loop to instrument, but two events are
// still worth counting for an operator watching a fleet of callers: how
// often S-box generation needs a retry (a cheap leading indicator that a
// particular key is pathological), and how often AEAD authentication
// fails (a leading indicator of tampering or misconfigured associated
// data). Both counters are registered with the default Prometheus
// registry in this package's init, so they exist as soon as the package
// is imported (sbox and the root package import it); a caller that never
// reads metrics pays only for the two counters and their registration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SBoxRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ruc",
		Subsystem: "sbox",
		Name:      "retries_total",
		Help:      "Number of S-box regeneration retries across all key expansions.",
	})

	AuthenticationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ruc",
		Subsystem: "aead",
		Name:      "authentication_failures_total",
		Help:      "Number of AEAD tag verification failures across all decrypt calls.",
	})
)

func init() {
	prometheus.MustRegister(SBoxRetries, AuthenticationFailures)
}
