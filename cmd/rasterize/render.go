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
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"
)

var renderCommand = &cli.Command{
	Name:  "render",
	Usage: "render a scene file to PNG",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "scene",
			Aliases:  []string{"s"},
			Usage:    "scene description in YAML format",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "output PNG file",
			Required: true,
		},
		&cli.Float64Flag{
			Name:  "scale",
			Value: 1,
			Usage: "resample the result by this factor",
		},
	},
	Action: func(c *cli.Context) error {
		return renderScene(c.String("scene"), c.String("out"), c.Float64("scale"))
	},
}

func renderScene(sceneFile, outFile string, scale float64) error {
	if !(scale > 0) {
		return fmt.Errorf("invalid scale %g", scale)
	}

	scene, err := LoadScene(sceneFile)
	if err != nil {
		return err
	}
	cv, err := scene.Render()
	if err != nil {
		return fmt.Errorf("%s: %w", sceneFile, err)
	}
	defer cv.Release()

	var img image.Image = cv.Bitmap()
	if scale != 1 {
		img = resample(img, scale)
	}
	if err := writePNG(outFile, img); err != nil {
		return err
	}

	b := img.Bounds()
	slog.Info("scene rendered",
		"scene", sceneFile,
		"out", outFile,
		"shapes", len(scene.Shapes),
		"width", b.Dx(),
		"height", b.Dy())
	return nil
}

// resample scales img using Catmull-Rom interpolation.
func resample(img image.Image, scale float64) image.Image {
	src := img.Bounds()
	w := max(int(float64(src.Dx())*scale+0.5), 1)
	h := max(int(float64(src.Dy())*scale+0.5), 1)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
