package sheetsync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels. "dispatched" means the request left without a local
// transport error; the remote side never acknowledges storage, so
// there is no "stored" outcome to count.
const (
	OutcomeDispatched = "dispatched"
	OutcomeFailed     = "dispatch_failed"
)

var dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lead_sync_dispatch_total",
	Help: "Sync dispatch attempts by transport outcome",
}, []string{"outcome"})
