package gedcom

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
)

// emitter appends GEDCOM lines to an in-memory buffer. One emitter belongs
// to one encode call; lines appear in exactly the order they are emitted.
// The first failure is kept in err and later lines are dropped.
type emitter struct {
	buf   bytes.Buffer
	eol   string
	lines int
	err   error
}

func newEmitter(eol string) *emitter {
	if eol == "" {
		eol = "\n"
	}
	return &emitter{eol: eol}
}

func (e *emitter) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// line writes "<level>[ <xref>] <tag>[ <value>]". An empty value writes
// the bare tag with no trailing space. A CR or LF in any part fails the
// emitter instead of writing a line without a level.
func (e *emitter) line(level int, xref, tag, value string) {
	if e.err != nil {
		return
	}
	if strings.ContainsAny(xref, "\r\n") || strings.ContainsAny(tag, "\r\n") || strings.ContainsAny(value, "\r\n") {
		e.fail(errors.NewEncode(tag, level, "value contains a line break"))
		return
	}
	e.buf.WriteString(strconv.Itoa(level))
	if xref != "" {
		e.buf.WriteByte(' ')
		e.buf.WriteString(xref)
	}
	e.buf.WriteByte(' ')
	e.buf.WriteString(tag)
	if value != "" {
		e.buf.WriteByte(' ')
		e.buf.WriteString(value)
	}
	e.buf.WriteString(e.eol)
	e.lines++
}

// emitTag writes a structural line that never carries a value.
func (e *emitter) emitTag(level int, xref, tag string) {
	e.line(level, xref, tag, "")
}

// emitIfPresent writes the line only when value is non-empty.
func (e *emitter) emitIfPresent(level int, xref, tag, value string) {
	if value == "" {
		return
	}
	e.line(level, xref, tag, value)
}

// emitOptional writes the value when present, otherwise the bare tag.
func (e *emitter) emitOptional(level int, xref, tag, value string) {
	e.line(level, xref, tag, value)
}

// emitRequired fails when value is empty or only whitespace. Nothing is
// written for the tag in that case.
func (e *emitter) emitRequired(level int, xref, tag, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewEncode(tag, level, "required value was null or blank")
	}
	e.line(level, xref, tag, value)
	return e.err
}

// emitLines writes multi-line text: the first line under tag at level and
// every later line under CONT at level+1. Blank lines are kept. Line breaks
// embedded in an entry become further CONT lines.
func (e *emitter) emitLines(level int, xref, tag string, lines []string) {
	if len(lines) == 0 {
		return
	}
	for i, l := range splitLines(lines) {
		if i == 0 {
			e.line(level, xref, tag, l)
			continue
		}
		e.line(level+1, "", "CONT", l)
	}
}

// splitLines expands entries holding CR, LF or CRLF breaks.
func splitLines(lines []string) []string {
	needs := false
	for _, l := range lines {
		if strings.ContainsAny(l, "\r\n") {
			needs = true
			break
		}
	}
	if !needs {
		return lines
	}
	out := make([]string, 0, len(lines)+1)
	for _, l := range lines {
		l = strings.ReplaceAll(l, "\r\n", "\n")
		l = strings.ReplaceAll(l, "\r", "\n")
		out = append(out, strings.Split(l, "\n")...)
	}
	return out
}

// Bytes returns the encoded document.
func (e *emitter) Bytes() []byte {
	return e.buf.Bytes()
}
