// Package testdata carries a trimmed snapshot of the Unicode Character
// Database for the test corpus: enough of UnicodeData.txt to cover the
// explicitly tested codepoints plus the First/Last markers of the
// algorithmically named ranges, and matching excerpts of CaseFolding.txt
// and Blocks.txt.
//
// The build-ignored program in download.go fetches the complete files for
// anyone who wants to run against a full UCD locally.
package testdata

import (
	"bytes"
	"embed"
	"io"
	"path"
)

//go:embed ucd
var ucdFiles embed.FS

// UCDReader returns a reader for the given ucd file for testing.
func UCDReader(file string) (io.Reader, error) {
	data, err := ucdFiles.ReadFile(path.Join("ucd", file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
