package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TickRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "triviabot", Name: "tick_runs_total", Help: "Total dispatch gate ticks",
	})
	Sends = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "triviabot", Name: "sends_total", Help: "Successful trivia sends",
	})
	SendErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "triviabot", Name: "send_errors_total", Help: "Send sequence errors by stage",
	}, []string{"stage"})
	FetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "triviabot", Name: "fact_fetch_seconds", Help: "Facts API fetch latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(TickRuns, Sends, SendErrors, FetchDuration)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveFetch(d time.Duration) { FetchDuration.Observe(d.Seconds()) }
