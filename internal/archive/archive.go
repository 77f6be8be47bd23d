// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/lamsh/lamsh/internal/log"
)

// Package zips the script into an in-memory archive suitable for the Lambda
// code upload. The entry keeps the script's original basename so the runtime
// layer can resolve it from the handler string, and is marked executable.
// Nothing is written to disk.
func Package(script string) ([]byte, error) {
	content, err := os.ReadFile(script)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	hdr := &zip.FileHeader{
		Name:   filepath.Base(script),
		Method: zip.Deflate,
	}
	hdr.SetMode(0o755)

	entry, err := w.CreateHeader(hdr)
	if err != nil {
		return nil, fmt.Errorf("creating zip entry: %w", err)
	}
	if _, err := entry.Write(content); err != nil {
		return nil, fmt.Errorf("writing zip entry: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing zip: %w", err)
	}

	log.Debugf("packaged %s: %s zipped to %s", script,
		humanize.Bytes(uint64(len(content))), humanize.Bytes(uint64(buf.Len())))
	return buf.Bytes(), nil
}
