package gedcom

import (
	"errors"
	"testing"

	gederrors "github.com/FocuswithJustin/gedcomkit/core/errors"
)

func TestEmitterLineForms(t *testing.T) {
	tests := []struct {
		name string
		emit func(e *emitter)
		want string
	}{
		{"tag only", func(e *emitter) { e.emitTag(0, "", "HEAD") }, "0 HEAD\n"},
		{"xref and tag", func(e *emitter) { e.emitTag(0, "@I1@", "INDI") }, "0 @I1@ INDI\n"},
		{"if present with value", func(e *emitter) { e.emitIfPresent(1, "", "DEST", "ANSTFILE") }, "1 DEST ANSTFILE\n"},
		{"if present empty", func(e *emitter) { e.emitIfPresent(1, "", "DEST", "") }, ""},
		{"optional with value", func(e *emitter) { e.emitOptional(2, "", "NAME", "Acme Tree") }, "2 NAME Acme Tree\n"},
		{"optional empty", func(e *emitter) { e.emitOptional(2, "", "NAME", "") }, "2 NAME\n"},
		{"value keeps inner spaces", func(e *emitter) { e.emitOptional(1, "", "NAME", "John  /Smith/") }, "1 NAME John  /Smith/\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmitter("")
			tt.emit(e)
			if got := string(e.Bytes()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmitRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"present", "ANSEL", "1 CHAR ANSEL\n", false},
		{"empty", "", "", true},
		{"whitespace", " \t ", "", true},
		{"line break", "ANS\nEL", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmitter("")
			err := e.emitRequired(1, "", "CHAR", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("emitRequired() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := string(e.Bytes()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if err == nil {
				return
			}
			var ee *gederrors.EncodeError
			if !errors.As(err, &ee) || ee.Tag != "CHAR" || ee.Level != 1 {
				t.Errorf("error = %#v, want EncodeError for CHAR at level 1", err)
			}
			if !errors.Is(err, gederrors.ErrEncoding) {
				t.Error("error does not unwrap to ErrEncoding")
			}
		})
	}
}

func TestEmitterRejectsLineBreaks(t *testing.T) {
	tests := []struct {
		name  string
		emit  func(e *emitter)
		tag   string
		level int
	}{
		{"value LF", func(e *emitter) { e.emitOptional(1, "", "NAME", "Jane\nDoe") }, "NAME", 1},
		{"value CR", func(e *emitter) { e.emitIfPresent(2, "", "PAGE", "12\r13") }, "PAGE", 2},
		{"xref", func(e *emitter) { e.emitTag(0, "@I\n1@", "INDI") }, "INDI", 0},
		{"tag", func(e *emitter) { e.emitTag(1, "", "NA\r\nME") }, "NA\r\nME", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmitter("")
			e.emitTag(0, "", "HEAD")
			tt.emit(e)
			e.emitTag(0, "", "TRLR")

			var ee *gederrors.EncodeError
			if !errors.As(e.err, &ee) {
				t.Fatalf("err = %v, want *EncodeError", e.err)
			}
			if ee.Tag != tt.tag || ee.Level != tt.level {
				t.Errorf("EncodeError at %q/%d, want %q/%d", ee.Tag, ee.Level, tt.tag, tt.level)
			}
			if got := string(e.Bytes()); got != "0 HEAD\n" {
				t.Errorf("output = %q, want only the lines before the failure", got)
			}
		})
	}
}

func TestEmitLines(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		want      string
		wantLines int
	}{
		{"empty", nil, "", 0},
		{"single", []string{"one"}, "1 NOTE one\n", 1},
		{"continued", []string{"one", "two", "three"}, "1 NOTE one\n2 CONT two\n2 CONT three\n", 3},
		{"blank middle line", []string{"one", "", "three"}, "1 NOTE one\n2 CONT\n2 CONT three\n", 3},
		{"blank first line", []string{"", "two"}, "1 NOTE\n2 CONT two\n", 2},
		{"embedded breaks", []string{"a\nb", "c\r\nd"}, "1 NOTE a\n2 CONT b\n2 CONT c\n2 CONT d\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmitter("")
			e.emitLines(1, "", "NOTE", tt.lines)
			if got := string(e.Bytes()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if e.lines != tt.wantLines {
				t.Errorf("lines = %d, want %d", e.lines, tt.wantLines)
			}
		})
	}
}

func TestEmitterCRLF(t *testing.T) {
	e := newEmitter(CRLF)
	e.emitTag(0, "", "HEAD")
	e.emitLines(1, "", "NOTE", []string{"a", ""})
	want := "0 HEAD\r\n1 NOTE a\r\n2 CONT\r\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
