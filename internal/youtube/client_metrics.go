package youtube

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "tunegate_youtube_request_duration_seconds",
	Help:    "Duration of upstream video platform API requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{
	"operation", // videos|search
	"success",   // true|false (transport level)
})

func observeRequest(op string, d time.Duration, success bool) {
	requestDuration.WithLabelValues(op, strconv.FormatBool(success)).Observe(d.Seconds())
}
