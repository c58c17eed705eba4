// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"image"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

var fixturesCommand = &cli.Command{
	Name:  "fixtures",
	Usage: "render all test fixtures as grayscale coverage images",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Value: "fixtures",
			Usage: "output directory",
		},
		&cli.StringFlag{
			Name:  "category",
			Usage: "only render this fixture category",
		},
	},
	Action: func(c *cli.Context) error {
		return renderFixtures(c.String("dir"), c.String("category"))
	},
}

func renderFixtures(dir, only string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	r := raster.NewRasterizer(testcases.TestCase{}.Clip())
	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if only != "" && only != category {
			continue
		}
		for _, tc := range testcases.All[category] {
			img := coverageImage(r, tc)
			fname := filepath.Join(dir, category+"_"+tc.Name+".png")
			if err := writePNG(fname, img); err != nil {
				return err
			}
			slog.Debug("fixture rendered", "file", fname)
			count++
		}
	}
	slog.Info("fixtures rendered", "dir", dir, "count", count)
	return nil
}

// coverageImage renders tc as white paint on black, with coverage mapped
// linearly to grey levels.
func coverageImage(r *raster.Rasterizer, tc testcases.TestCase) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	tc.Setup(r)
	tc.Render(r, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(min(c, 1)*255 + 0.5)
		}
	})
	return img
}
