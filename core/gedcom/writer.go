package gedcom

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/core/validate"
	"github.com/FocuswithJustin/gedcomkit/internal/logging"
	"github.com/FocuswithJustin/gedcomkit/internal/metrics"
)

// Line terminators accepted by WithLineTerminator.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithValidation validates the graph before encoding, repairing what the
// responder approves. Encoding is refused while an ERROR finding remains
// unrepaired. A nil responder validates without repairing.
func WithValidation(responder validate.AutoRepairResponder) WriterOption {
	return func(w *Writer) {
		w.validateFirst = true
		w.responder = responder
	}
}

// WithLineTerminator selects LF (the default) or CRLF line endings.
func WithLineTerminator(eol string) WriterOption {
	return func(w *Writer) { w.eol = eol }
}

// WithLogger sets the logger for encode summaries.
func WithLogger(l *slog.Logger) WriterOption {
	return func(w *Writer) { w.logger = l }
}

// Writer encodes a record graph as a GEDCOM 5.5 document. A Writer is not
// safe for concurrent use.
type Writer struct {
	gedcom        *model.Gedcom
	eol           string
	validateFirst bool
	responder     validate.AutoRepairResponder
	logger        *slog.Logger
	results       *validate.Results
}

// NewWriter creates a Writer for g.
func NewWriter(g *model.Gedcom, opts ...WriterOption) (*Writer, error) {
	if g == nil {
		return nil, errors.NewValidation("gedcom", "is a required argument")
	}
	w := &Writer{gedcom: g, eol: LF}
	for _, opt := range opts {
		opt(w)
	}
	if w.eol != LF && w.eol != CRLF {
		return nil, errors.NewValidation("lineTerminator", fmt.Sprintf("must be LF or CRLF, got %q", w.eol))
	}
	if w.logger == nil {
		w.logger = logging.GetLogger()
	}
	return w, nil
}

// ValidationResults returns the findings of the last validation run, or nil
// when validation is not enabled or has not run.
func (w *Writer) ValidationResults() *validate.Results {
	return w.results
}

// EncodedRecord is the encoded text of one top-level record.
type EncodedRecord struct {
	Kind model.Kind
	XRef string
	Text []byte
}

// Encode returns the whole document.
func (w *Writer) Encode() ([]byte, error) {
	enc, _, err := w.encode()
	if err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// Write encodes the document and writes it to out. Nothing reaches out
// when encoding fails.
func (w *Writer) Write(out io.Writer) error {
	data, err := w.Encode()
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return errors.NewIO("write", "", err)
	}
	return nil
}

// Records encodes the document and returns it split into top-level
// records, header and trailer included, in document order.
func (w *Writer) Records() ([]EncodedRecord, error) {
	enc, spans, err := w.encode()
	if err != nil {
		return nil, err
	}
	data := enc.Bytes()
	out := make([]EncodedRecord, 0, len(spans))
	for _, s := range spans {
		text := make([]byte, s.to-s.from)
		copy(text, data[s.from:s.to])
		out = append(out, EncodedRecord{Kind: s.kind, XRef: s.xref, Text: text})
	}
	return out, nil
}

func (w *Writer) encode() (*encoder, []record, error) {
	start := time.Now()

	if w.validateFirst {
		if err := w.runValidation(); err != nil {
			metrics.EncodeFailed()
			return nil, nil, err
		}
	}

	enc := newEncoder(w.gedcom, w.eol)
	spans := enc.encodeGedcom()
	if enc.err != nil {
		metrics.EncodeFailed()
		w.logger.Error("encode failed", "error", enc.err)
		return nil, nil, enc.err
	}

	for _, s := range spans {
		metrics.RecordEncoded(string(s.kind))
	}
	elapsed := time.Since(start)
	metrics.EncodeSucceeded(enc.lines, elapsed.Seconds())
	logging.EncodeComplete(w.logger, len(spans), enc.lines, elapsed)
	return enc, spans, nil
}

func (w *Writer) runValidation() error {
	v, err := validate.New(w.gedcom,
		validate.WithAutoRepairResponder(w.responder),
		validate.WithLogger(w.logger))
	if err != nil {
		return err
	}
	v.Validate()
	w.results = v.Results()

	if open := w.results.Unrepaired(validate.SeverityError); len(open) > 0 {
		for _, f := range open {
			w.logger.Warn("unrepaired finding", "finding", f.String())
		}
		return errors.NewValidation("gedcom",
			fmt.Sprintf("%d error finding(s) remain unrepaired", len(open)))
	}
	return nil
}
