// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// WritePNG stores img at name.
func WritePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", name)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Debug("render: wrote png", "file", name, "size", img.Bounds().Size())
	return nil
}
