package gedcom

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/internal/logging"
	"github.com/FocuswithJustin/gedcomkit/internal/validation"
)

// osRename is a variable to allow testing of rename errors.
var osRename = os.Rename

// tempFileWrite is a function variable for writing to temp files (for testing).
var tempFileWrite = func(f *os.File, data []byte) (int, error) {
	return f.Write(data)
}

// tempFileClose is a function variable for closing temp files (for testing).
var tempFileClose = func(f io.Closer) error {
	return f.Close()
}

// ReadFile decodes the document at path. Compressed files are detected by
// content, not by extension. Files larger than validation.MaxFileSize are
// refused.
func ReadFile(path string) (*model.Gedcom, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	defer f.Close()

	data, err := readLimited(f, path, "read")
	if err != nil {
		return nil, err
	}
	return parse(data, path, logging.GetLogger())
}

// WriteFile encodes g to path. The header's FILE is set to the base name
// of path, the document is xz-compressed when path ends in ".xz", and the
// file is replaced atomically: on any failure path is left untouched and
// the header keeps its previous FILE.
func WriteFile(g *model.Gedcom, path string, opts ...WriterOption) error {
	if err := checkPath(path); err != nil {
		return err
	}
	var header *model.Header
	previous := ""
	if g != nil && g.Header != nil {
		header = g.Header
		previous = header.FileName
		header.FileName = strings.TrimSuffix(filepath.Base(path), ".xz")
	}
	if err := writeFile(g, path, opts); err != nil {
		if header != nil {
			header.FileName = previous
		}
		return err
	}
	return nil
}

func checkPath(path string) error {
	if err := validation.ValidatePath(path); err != nil {
		return &errors.ValidationError{Field: "path", Value: path, Message: err.Error(), Err: err}
	}
	return nil
}

func writeFile(g *model.Gedcom, path string, opts []WriterOption) error {
	w, err := NewWriter(g, opts...)
	if err != nil {
		return err
	}
	data, err := w.Encode()
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".xz") {
		if data, err = compressXZ(data); err != nil {
			return errors.NewIO("compress", path, err)
		}
	}
	return writeAtomic(path, data)
}

func compressXZ(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".gedcom-*")
	if err != nil {
		return errors.NewIO("create temp file in", dir, err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFileWrite(tempFile, data); err != nil {
		tempFileClose(tempFile)
		os.Remove(tempPath)
		return errors.NewIO("write", tempPath, err)
	}
	if err := tempFileClose(tempFile); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("close", tempPath, err)
	}
	if err := osRename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("rename", path, err)
	}
	return nil
}
