package sales

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// MaybeUnpack makes archived exports transparent to the loader: .zip, .gz and
// .lz4 files are extracted into a temp directory and the extracted path is
// returned. Anything else passes through untouched. The original file is
// never removed — it is the user's configured input, not an upload of ours.
func MaybeUnpack(filePath string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return unpackZip(filePath)
	case ".gz":
		return unpackGzip(filePath)
	case ".lz4":
		return unpackLZ4(filePath)
	}
	return filePath, nil
}

func unpackZip(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// Take the largest file in the archive; exports are single-file but
	// sometimes ship with a readme alongside.
	var largest *zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largest == nil || f.UncompressedSize64 > largest.UncompressedSize64 {
			largest = f
		}
	}
	if largest == nil {
		return "", fmt.Errorf("zip archive %s contains no files", filePath)
	}

	rc, err := largest.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return writeTemp(filepath.Base(largest.Name), rc)
}

func unpackGzip(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return "", err
	}
	defer gr.Close()
	return writeTemp(strings.TrimSuffix(filepath.Base(filePath), ".gz"), gr)
}

func unpackLZ4(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return writeTemp(strings.TrimSuffix(filepath.Base(filePath), ".lz4"), lz4.NewReader(f))
}

func writeTemp(name string, r io.Reader) (string, error) {
	dir, err := os.MkdirTemp("", "sales-unpack-")
	if err != nil {
		return "", err
	}
	destPath := filepath.Join(dir, name)
	out, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", err
	}
	return destPath, nil
}
