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
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/raster/pixfmt"
)

var formatsCommand = &cli.Command{
	Name:  "formats",
	Usage: "print the memory layout of pixel formats",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "width", Value: 1920, Usage: "frame width in pixels"},
		&cli.IntFlag{Name: "height", Value: 1080, Usage: "frame height in pixels"},
		&cli.IntFlag{Name: "stride", Usage: "row stride of the primary plane, 0 for default"},
		&cli.IntFlag{Name: "stride-uv", Usage: "row stride of the chroma planes, 0 for default"},
		&cli.StringFlag{Name: "format", Usage: "only show this format"},
	},
	Action: func(c *cli.Context) error {
		formats := pixfmt.Formats()
		if name := c.String("format"); name != "" {
			f, err := pixfmt.ParseFormat(name)
			if err != nil {
				return err
			}
			formats = []pixfmt.Format{f}
		}
		return printFormats(c.App.Writer, formats,
			c.Int("width"), c.Int("height"), c.Int("stride"), c.Int("stride-uv"))
	},
}

func printFormats(w io.Writer, formats []pixfmt.Format, width, height, stride, strideUV int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "format\tplanes\tstride\tstride_uv\theight_uv\tsize\t")
	for _, f := range formats {
		l, err := pixfmt.Describe(f, width, height, stride, strideUV)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t\n",
			f, l.Planes, l.Stride, l.StrideUV, l.HeightUV, l.Size)
	}
	return tw.Flush()
}
