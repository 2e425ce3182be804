package openapi

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MarshalJSON renders the document as indented JSON ending in a newline.
func MarshalJSON(spec *Spec) ([]byte, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return append(data, '\n'), nil
}

// Encode writes the rendered document to w.
func Encode(w io.Writer, spec *Spec) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON renders the document into filename. The content is written to a
// temporary file in the same directory and renamed over filename.
func WriteJSON(spec *Spec, filename string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".openapi-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
