package logger

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricType identifies the kind of a metric family
type MetricType int

const (
	// CounterType is a monotonically increasing value
	CounterType MetricType = iota
	// GaugeType is a value that can go up and down
	GaugeType
	// HistogramType samples observations into fixed buckets
	HistogramType
	// SummaryType samples observations into fixed quantiles
	SummaryType
	// UntypedType is accepted by Prometheus but not supported here
	UntypedType
	// InfoType is accepted by Prometheus but not supported here
	InfoType
)

// String returns the string representation of the metric type
func (t MetricType) String() string {
	switch t {
	case CounterType:
		return "counter"
	case GaugeType:
		return "gauge"
	case HistogramType:
		return "histogram"
	case SummaryType:
		return "summary"
	case UntypedType:
		return "untyped"
	case InfoType:
		return "info"
	default:
		return "unknown"
	}
}

// MetricAction selects the operation applied by ReportMetric
type MetricAction int

const (
	// Increment adds the value; valid for counters and gauges
	Increment MetricAction = iota
	// Decrement subtracts the value; valid for gauges only
	Decrement
	// Set replaces the value; valid for gauges only
	Set
	// Observe records a sample; valid for histograms and summaries
	Observe
)

// Labels distinguishes metric instances within one family
type Labels map[string]string

// Metric misuse errors. These indicate a coding mistake at the call
// site and are returned synchronously, never retried or suppressed.
var (
	// ErrMetricExists is returned when a name is registered twice
	ErrMetricExists = errors.New("metric already registered")
	// ErrUnknownMetric is returned when reporting to an unregistered name
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrInvalidAction is returned when the action does not fit the
	// registered metric type
	ErrInvalidAction = errors.New("invalid action for metric type")
	// ErrUnsupportedKind is returned for Untyped and Info registrations
	ErrUnsupportedKind = errors.New("unsupported metric type")
)

// DefaultBuckets are the histogram bucket boundaries used when none
// are given, sized for latencies in seconds
var DefaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// DefaultQuantiles are the summary objectives used when none are
// given: median, 90th and 99th percentile with matching error windows
var DefaultQuantiles = map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}

// metricFamily is the sum type over the four supported family kinds.
// Exactly one of the vec fields matching typ is non-nil; dispatch
// switches on the tag.
type metricFamily struct {
	typ       MetricType
	counter   *prometheus.CounterVec
	gauge     *prometheus.GaugeVec
	histogram *prometheus.HistogramVec
	summary   *prometheus.SummaryVec
}

// metricOptions collects the per-family settings fixed at
// registration time
type metricOptions struct {
	labelNames []string
	buckets    []float64
	quantiles  map[float64]float64
}

// MetricOption customizes a metric family at registration time
type MetricOption func(*metricOptions)

// WithLabelNames fixes the label names every report against this
// family must supply. Prometheus requires label names per family at
// registration, the counterpart of buckets and quantiles being fixed
// per name rather than per label-set.
func WithLabelNames(names ...string) MetricOption {
	return func(o *metricOptions) {
		o.labelNames = names
	}
}

// WithBuckets overrides DefaultBuckets for a histogram family
func WithBuckets(buckets ...float64) MetricOption {
	return func(o *metricOptions) {
		o.buckets = buckets
	}
}

// WithQuantiles overrides DefaultQuantiles for a summary family
func WithQuantiles(quantiles map[float64]float64) MetricOption {
	return func(o *metricOptions) {
		o.quantiles = quantiles
	}
}

// Registry exposes the logger's Prometheus registry for external
// exposition, e.g. promhttp.HandlerFor. The registry itself is
// concurrency-safe; only family registration and reporting go through
// the logger's mutex.
func (l *Logger) Registry() *prometheus.Registry {
	return l.registry
}

// AddMetric registers a new metric family under name. Registration is
// one-way: a name can be registered at most once and never removed.
// Bucket boundaries, quantile objectives and label names are fixed
// here and apply to every label-set under the name. Untyped and Info
// kinds are rejected.
func (l *Logger) AddMetric(name, help string, typ MetricType, opts ...MetricOption) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.families[name]; exists {
		return errors.Wrap(ErrMetricExists, name)
	}

	o := metricOptions{buckets: DefaultBuckets, quantiles: DefaultQuantiles}
	for _, opt := range opts {
		opt(&o)
	}

	fam := metricFamily{typ: typ}
	switch typ {
	case CounterType:
		fam.counter = prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: name, Help: help}, o.labelNames)
		if err := l.registry.Register(fam.counter); err != nil {
			return errors.Wrapf(err, "register counter %q", name)
		}
	case GaugeType:
		fam.gauge = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: name, Help: help}, o.labelNames)
		if err := l.registry.Register(fam.gauge); err != nil {
			return errors.Wrapf(err, "register gauge %q", name)
		}
	case HistogramType:
		fam.histogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: name, Help: help, Buckets: o.buckets}, o.labelNames)
		if err := l.registry.Register(fam.histogram); err != nil {
			return errors.Wrapf(err, "register histogram %q", name)
		}
	case SummaryType:
		fam.summary = prometheus.NewSummaryVec(
			prometheus.SummaryOpts{Name: name, Help: help, Objectives: o.quantiles}, o.labelNames)
		if err := l.registry.Register(fam.summary); err != nil {
			return errors.Wrapf(err, "register summary %q", name)
		}
	default:
		return errors.Wrap(ErrUnsupportedKind, typ.String())
	}

	l.families[name] = fam
	return nil
}

// ReportMetric applies an action to the metric family registered under
// name, on the instance identified by labels. The action must match
// the family's type: counters only increment, gauges increment,
// decrement or set, histograms and summaries only observe. The
// conventional delta for counters and gauges is 1.
func (l *Logger) ReportMetric(name string, action MetricAction, value float64, labels Labels) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fam, ok := l.families[name]
	if !ok {
		return errors.Wrap(ErrUnknownMetric, name)
	}

	switch fam.typ {
	case CounterType:
		if action != Increment {
			return errors.Wrapf(ErrInvalidAction, "counter %q only supports Increment", name)
		}
		// Counters are monotonic; client_golang panics on a negative
		// delta, so reject it here as the misuse it is.
		if value < 0 {
			return errors.Wrapf(ErrInvalidAction, "counter %q cannot decrease", name)
		}
		c, err := fam.counter.GetMetricWith(prometheus.Labels(labels))
		if err != nil {
			return errors.Wrapf(err, "metric %q", name)
		}
		c.Add(value)

	case GaugeType:
		g, err := fam.gauge.GetMetricWith(prometheus.Labels(labels))
		if err != nil {
			return errors.Wrapf(err, "metric %q", name)
		}
		switch action {
		case Increment:
			g.Add(value)
		case Decrement:
			g.Sub(value)
		case Set:
			g.Set(value)
		default:
			return errors.Wrapf(ErrInvalidAction, "gauge %q does not support Observe", name)
		}

	case HistogramType:
		if action != Observe {
			return errors.Wrapf(ErrInvalidAction, "histogram %q only supports Observe", name)
		}
		h, err := fam.histogram.GetMetricWith(prometheus.Labels(labels))
		if err != nil {
			return errors.Wrapf(err, "metric %q", name)
		}
		h.Observe(value)

	case SummaryType:
		if action != Observe {
			return errors.Wrapf(ErrInvalidAction, "summary %q only supports Observe", name)
		}
		s, err := fam.summary.GetMetricWith(prometheus.Labels(labels))
		if err != nil {
			return errors.Wrapf(err, "metric %q", name)
		}
		s.Observe(value)
	}

	return nil
}

// IncrementMetric reports an Increment of 1 without labels, the most
// common counter operation
func (l *Logger) IncrementMetric(name string) error {
	return l.ReportMetric(name, Increment, 1, nil)
}
