// Package metrics exposes prometheus counters for encoding, decoding and
// validation of GEDCOM record graphs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every collector in this package. It is separate from the
// prometheus default registry so a CLI run can dump only its own series.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	recordsEncoded = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "gedcom_records_encoded_total",
		Help: "Total top-level records encoded, by record kind",
	}, []string{"kind"})

	linesEmitted = factory.NewCounter(prometheus.CounterOpts{
		Name: "gedcom_lines_emitted_total",
		Help: "Total GEDCOM lines emitted by successful encodes",
	})

	encodeFailures = factory.NewCounter(prometheus.CounterOpts{
		Name: "gedcom_encode_errors_total",
		Help: "Total encodes aborted by an encoding failure",
	})

	encodeDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "gedcom_encode_duration_seconds",
		Help:    "Duration of a full document encode",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	linesDecoded = factory.NewCounter(prometheus.CounterOpts{
		Name: "gedcom_lines_decoded_total",
		Help: "Total GEDCOM lines read by the decoder",
	})

	decodeFailures = factory.NewCounter(prometheus.CounterOpts{
		Name: "gedcom_decode_errors_total",
		Help: "Total decodes rejected with a parse error",
	})

	findings = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "gedcom_findings_total",
		Help: "Total validation findings, by severity",
	}, []string{"severity"})

	repairs = factory.NewCounter(prometheus.CounterOpts{
		Name: "gedcom_repairs_total",
		Help: "Total auto-repairs applied to record graphs",
	})
)

// RecordEncoded counts one encoded top-level record of the given kind.
func RecordEncoded(kind string) {
	recordsEncoded.WithLabelValues(kind).Inc()
}

// EncodeSucceeded records the size and duration of a finished encode.
func EncodeSucceeded(lines int, seconds float64) {
	linesEmitted.Add(float64(lines))
	encodeDuration.Observe(seconds)
}

// EncodeFailed counts an aborted encode.
func EncodeFailed() {
	encodeFailures.Inc()
}

// LinesDecoded counts lines read by the decoder.
func LinesDecoded(n int) {
	linesDecoded.Add(float64(n))
}

// DecodeFailed counts a rejected decode.
func DecodeFailed() {
	decodeFailures.Inc()
}

// Finding counts one validation finding.
func Finding(severity string) {
	findings.WithLabelValues(severity).Inc()
}

// RepairApplied counts one auto-repair.
func RepairApplied() {
	repairs.Inc()
}

// WriteTextfile writes every collector in Registry to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
