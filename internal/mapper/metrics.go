package mapper

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var derivationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tunegate_link_derivations_total",
	Help: "Outcome of download link derivation attempts",
}, []string{"success"})

func recordDerivation(success bool) {
	derivationsTotal.WithLabelValues(strconv.FormatBool(success)).Inc()
}
