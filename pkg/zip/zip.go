// Package zip bundles page artifacts into a single download.
package zip

import (
	"archive/zip"
	"fmt"
	"io"
	"time"
)

type Asset struct {
	Filename string
	Data     []byte
}

// Write streams assets as a zip archive to w. Entries carry modified so
// archives of the same page are byte identical.
func Write(w io.Writer, modified time.Time, assets []Asset) error {
	zw := zip.NewWriter(w)
	for _, asset := range assets {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     asset.Filename,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("zip: create %s: %w", asset.Filename, err)
		}
		if _, err := f.Write(asset.Data); err != nil {
			return fmt.Errorf("zip: write %s: %w", asset.Filename, err)
		}
	}
	return zw.Close()
}
