package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat pipeline. All observe
// methods are nil-safe so handlers can run without a registry in tests.
type ChatMetrics struct {
	requestsTotal   *prometheus.CounterVec
	blockedTotal    *prometheus.CounterVec
	redactionsTotal prometheus.Counter
	llmLatency      prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chat",
			Subsystem: "pipeline",
			Name:      "requests_total",
			Help:      "Chat requests by terminal outcome",
		}, []string{"outcome"}),
		blockedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chat",
			Subsystem: "pipeline",
			Name:      "blocked_inputs_total",
			Help:      "Inputs rejected by the sanitizer, by reason",
		}, []string{"reason"}),
		redactionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chat",
			Subsystem: "pipeline",
			Name:      "price_redactions_total",
			Help:      "Price-like spans redacted from generated replies",
		}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chat",
			Subsystem: "pipeline",
			Name:      "llm_latency_seconds",
			Help:      "Latency of upstream LLM completions",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.blockedTotal, m.redactionsTotal, m.llmLatency)
	return m
}

func (m *ChatMetrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *ChatMetrics) ObserveBlocked(reason string) {
	if m == nil {
		return
	}
	m.blockedTotal.WithLabelValues(reason).Inc()
}

func (m *ChatMetrics) ObserveRedactions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.redactionsTotal.Add(float64(n))
}

func (m *ChatMetrics) ObserveLLMLatency(seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.Observe(seconds)
}
