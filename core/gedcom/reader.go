package gedcom

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/internal/logging"
	"github.com/FocuswithJustin/gedcomkit/internal/metrics"
	"github.com/FocuswithJustin/gedcomkit/internal/validation"
)

// formatName is the Format of every ParseError raised by the decoder.
const formatName = "GEDCOM"

// maxInputSize caps the bytes read from a stream or file and the bytes an
// xz stream may expand to. A variable so tests can lower it.
var maxInputSize int64 = validation.MaxFileSize

var (
	xzMagic    = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// node is one parsed line with its subordinate lines. CONT and CONC lines
// are folded into the lines of their parent.
type node struct {
	level    int
	xref     string
	tag      string
	lines    []string
	line     int
	children []*node
}

// value returns the first line of the node's value.
func (n *node) value() string {
	if len(n.lines) == 0 {
		return ""
	}
	return n.lines[0]
}

// text returns the node's value as multi-line text; a lone empty line
// means no text.
func (n *node) text() []string {
	if len(n.lines) == 0 || (len(n.lines) == 1 && n.lines[0] == "") {
		return nil
	}
	return n.lines
}

// Read decodes a GEDCOM document from r. xz-compressed input is detected
// by its magic bytes. Input larger than validation.MaxFileSize is refused.
func Read(r io.Reader) (*model.Gedcom, error) {
	data, err := readLimited(r, "", "read")
	if err != nil {
		return nil, err
	}
	return parse(data, "", logging.GetLogger())
}

// readLimited reads r up to maxInputSize. Oversized input is a ParseError
// wrapping validation.ErrFileTooLarge; other failures are IOErrors.
func readLimited(r io.Reader, path, op string) ([]byte, error) {
	data, err := validation.ReadAll(r, maxInputSize)
	if errors.Is(err, validation.ErrFileTooLarge) {
		metrics.DecodeFailed()
		return nil, parseError(path, 0, fmt.Sprintf("input exceeds %d bytes", maxInputSize), err)
	}
	if err != nil {
		return nil, errors.NewIO(op, path, err)
	}
	return data, nil
}

func parseError(path string, line int, message string, err error) *errors.ParseError {
	pe := errors.NewParse(formatName, path, message)
	pe.Line = line
	pe.Err = err
	return pe
}

// Parse decodes a GEDCOM document held in memory.
func Parse(data []byte) (*model.Gedcom, error) {
	return parse(data, "", logging.GetLogger())
}

func parse(data []byte, path string, logger *slog.Logger) (*model.Gedcom, error) {
	start := time.Now()

	data, err := prepareInput(data, path)
	if err != nil {
		metrics.DecodeFailed()
		return nil, err
	}
	roots, lines, err := parseLines(data, path)
	if err != nil {
		metrics.DecodeFailed()
		return nil, err
	}

	d := &decoder{logger: logger}
	g := d.document(roots)

	metrics.LinesDecoded(lines)
	logging.DecodeComplete(logger, lines, d.records, d.skipped, time.Since(start), "path", path)
	return g, nil
}

// prepareInput decompresses xz input and removes a UTF-8 byte order mark.
// Decompressed output is held to the same size cap as plain input.
func prepareInput(data []byte, path string) ([]byte, error) {
	if bytes.HasPrefix(data, xzMagic) {
		zr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, parseError(path, 0, "invalid xz stream", err)
		}
		out, err := validation.ReadAll(zr, maxInputSize)
		if errors.Is(err, validation.ErrFileTooLarge) {
			return nil, parseError(path, 0, fmt.Sprintf("xz stream expands beyond %d bytes", maxInputSize), err)
		}
		if err != nil {
			return nil, parseError(path, 0, "invalid xz stream", err)
		}
		data = out
	}
	if bytes.HasPrefix(data, utf16BEBOM) || bytes.HasPrefix(data, utf16LEBOM) {
		return nil, errors.NewUnsupported("UTF-16 input", "only 8-bit encodings are decoded")
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

// parseLines parses every physical line and builds the node tree. It
// returns the level-0 nodes and the number of lines read.
func parseLines(data []byte, path string) ([]*node, int, error) {
	var (
		roots []*node
		stack []*node
		count int
	)

	for i, raw := range splitPhysicalLines(string(data)) {
		lineNo := i + 1
		text := strings.TrimLeft(raw, " \t")
		if strings.TrimSpace(text) == "" {
			continue
		}
		count++

		parsed, err := lineParser.ParseString(path, text)
		if err != nil {
			return nil, 0, parseError(path, lineNo, fmt.Sprintf("malformed line %q", raw), err)
		}

		n := &node{level: parsed.Level, xref: parsed.XRef, tag: parsed.Tag, line: lineNo}
		value := ""
		if parsed.Value != nil {
			value = *parsed.Value
		}
		n.lines = []string{value}

		switch {
		case len(stack) == 0 && n.level != 0:
			return nil, 0, parseError(path, lineNo, fmt.Sprintf("first line must be level 0, got %d", n.level), nil)
		case n.level > len(stack):
			return nil, 0, parseError(path, lineNo, fmt.Sprintf("level %d follows level %d", n.level, len(stack)-1), nil)
		}

		stack = stack[:n.level]
		if n.level == 0 {
			if n.tag == "CONT" || n.tag == "CONC" {
				return nil, 0, parseError(path, lineNo, n.tag+" cannot start a record", nil)
			}
			roots = append(roots, n)
		} else {
			parent := stack[n.level-1]
			switch n.tag {
			case "CONT":
				parent.lines = append(parent.lines, value)
			case "CONC":
				parent.lines[len(parent.lines)-1] += value
			default:
				parent.children = append(parent.children, n)
			}
		}
		stack = append(stack, n)
	}
	return roots, count, nil
}

// splitPhysicalLines splits on LF, CRLF or a lone CR.
func splitPhysicalLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
