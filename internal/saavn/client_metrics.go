package saavn

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "tunegate_saavn_request_duration_seconds",
	Help:    "Duration of upstream catalog API requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{
	"operation", // api.php __call value
	"success",   // true|false (transport level)
})

func observeRequest(op string, d time.Duration, success bool) {
	requestDuration.WithLabelValues(op, strconv.FormatBool(success)).Observe(d.Seconds())
}
