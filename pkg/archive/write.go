package archive

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"

	"github.com/noders-team/go-manifest/pkg/manifest"
)

// Write adds the META-INF/ directory and the encoded manifest to zw. Java
// tooling expects them to be the first entries, so call Write before
// adding anything else.
func Write(zw *zip.Writer, m manifest.Manifest, opts ...manifest.Option) error {
	data, err := manifest.Marshal(m, opts...)
	if err != nil {
		return err
	}

	if _, err := zw.CreateHeader(&zip.FileHeader{Name: ManifestDir, Method: zip.Store}); err != nil {
		return fmt.Errorf("archive: failed to create %s: %w", ManifestDir, err)
	}
	w, err := zw.CreateHeader(&zip.FileHeader{Name: ManifestPath, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("archive: failed to create %s: %w", ManifestPath, err)
	}
	_, err = w.Write(data)
	return err
}

// Rewrite copies every entry of zr to w, replacing the manifest with m.
func Rewrite(zr *zip.Reader, w io.Writer, m manifest.Manifest, opts ...manifest.Option) error {
	zw := zip.NewWriter(w)
	defer zw.Close()

	if err := Write(zw, m, opts...); err != nil {
		return err
	}

	for _, f := range zr.File {
		if strings.EqualFold(f.Name, ManifestDir) || strings.EqualFold(f.Name, ManifestPath) {
			continue
		}
		if err := copyFile(zw, f); err != nil {
			return fmt.Errorf("archive: failed to copy %s: %w", f.Name, err)
		}
	}

	return zw.Close()
}

func copyFile(zw *zip.Writer, f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			log.Err(err).Msgf("failed to close %s", f.Name)
		}
	}()

	hdr := f.FileHeader
	hdr.CRC32 = 0
	hdr.CompressedSize64 = 0
	hdr.UncompressedSize64 = 0
	w, err := zw.CreateHeader(&hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, rc)
	return err
}
