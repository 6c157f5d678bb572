package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DetectionStatsProvider exposes classification counts keyed by intent
// name and service.
type DetectionStatsProvider interface {
	DetectionCounts() []DetectionCount
}

// LookupStatsProvider exposes response lookups keyed by request channel.
type LookupStatsProvider interface {
	LookupCounts() map[string]uint64
}

// RegistryProvider exposes the size of the intent registry.
type RegistryProvider interface {
	IntentCount() int
}

// Collector is a prometheus.Collector that gathers IVR metrics at scrape time.
type Collector struct {
	detections DetectionStatsProvider
	lookups    LookupStatsProvider
	registry   RegistryProvider
	startTime  time.Time

	// Metric descriptors.
	detectionsDesc *prometheus.Desc
	lookupsDesc    *prometheus.Desc
	intentsDesc    *prometheus.Desc
	uptimeDesc     *prometheus.Desc
}

// NewCollector creates a new metrics collector. Any provider may be nil if unavailable.
func NewCollector(
	detections DetectionStatsProvider,
	lookups LookupStatsProvider,
	registry RegistryProvider,
	startTime time.Time,
) *Collector {
	return &Collector{
		detections: detections,
		lookups:    lookups,
		registry:   registry,
		startTime:  startTime,

		detectionsDesc: prometheus.NewDesc(
			"ivrdemo_intent_detections_total",
			"Number of spoken queries classified, by resolved intent",
			[]string{"intent", "service"}, nil,
		),
		lookupsDesc: prometheus.NewDesc(
			"ivrdemo_response_lookups_total",
			"Number of digit to response lookups, by request channel",
			[]string{"channel"}, nil,
		),
		intentsDesc: prometheus.NewDesc(
			"ivrdemo_registered_intents",
			"Number of actions in the intent registry",
			nil, nil,
		),
		uptimeDesc: prometheus.NewDesc(
			"ivrdemo_uptime_seconds",
			"Seconds since the IVR demo process started",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.detectionsDesc
	ch <- c.lookupsDesc
	ch <- c.intentsDesc
	ch <- c.uptimeDesc
}

// Collect implements prometheus.Collector. It queries all providers at scrape time.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.detections != nil {
		for _, d := range c.detections.DetectionCounts() {
			ch <- prometheus.MustNewConstMetric(
				c.detectionsDesc, prometheus.CounterValue,
				float64(d.Count), d.Intent, d.Service,
			)
		}
	}

	if c.lookups != nil {
		for channel, n := range c.lookups.LookupCounts() {
			ch <- prometheus.MustNewConstMetric(
				c.lookupsDesc, prometheus.CounterValue,
				float64(n), channel,
			)
		}
	}

	if c.registry != nil {
		ch <- prometheus.MustNewConstMetric(
			c.intentsDesc, prometheus.GaugeValue,
			float64(c.registry.IntentCount()),
		)
	}

	ch <- prometheus.MustNewConstMetric(
		c.uptimeDesc, prometheus.GaugeValue,
		time.Since(c.startTime).Seconds(),
	)
}
