// Package archive reads and writes the manifest entry of JAR style zip
// archives (jar, war, dar).
package archive

import (
	"errors"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"

	"github.com/noders-team/go-manifest/pkg/manifest"
)

const (
	ManifestDir  = "META-INF/"
	ManifestPath = ManifestDir + "MANIFEST.MF"
)

// ErrNotFound is returned when an archive has no manifest entry.
var ErrNotFound = errors.New("archive: " + ManifestPath + " not found")

// Find returns the manifest entry of zr. An exact name match wins over a
// case-insensitive one.
func Find(zr *zip.Reader) (*zip.File, error) {
	var fallback *zip.File
	for _, f := range zr.File {
		if f.Name == ManifestPath {
			return f, nil
		}
		if fallback == nil && strings.EqualFold(f.Name, ManifestPath) {
			fallback = f
		}
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, ErrNotFound
}

// Open returns the decompressed manifest entry of zr.
func Open(zr *zip.Reader) (io.ReadCloser, error) {
	f, err := Find(zr)
	if err != nil {
		return nil, err
	}
	return f.Open()
}

func Decode(zr *zip.Reader, opts ...manifest.Option) (manifest.Manifest, error) {
	rc, err := Open(zr)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			log.Err(err).Msgf("failed to close %s", ManifestPath)
		}
	}()

	return manifest.NewDecoder(rc, opts...).Decode()
}

// DecodeReaderAt decodes the manifest of an archive that is already open.
func DecodeReaderAt(r io.ReaderAt, size int64, opts ...manifest.Option) (manifest.Manifest, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return Decode(zr, opts...)
}

// DecodeFile decodes the manifest of the archive at path.
func DecodeFile(path string, opts ...manifest.Option) (manifest.Manifest, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			log.Err(err).Msgf("failed to close zip file")
		}
	}()

	return Decode(&r.Reader, opts...)
}
