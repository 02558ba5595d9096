package agent

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_digest_runs_total",
		Help: "Pipeline runs by final status",
	}, []string{"status"}) // status=resumo_gerado|erro_processado|erro

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "video_digest_run_duration_seconds",
		Help:    "Wall time of one pipeline run",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 160},
	})
)

func recordRun(final VideoState, started time.Time) {
	runsTotal.WithLabelValues(string(final.Status)).Inc()
	runDuration.Observe(time.Since(started).Seconds())
}
