package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kovidgoyal/chroma/colorspace"
	"github.com/kovidgoyal/chroma/hsv"
	"github.com/kovidgoyal/chroma/lab"
	"github.com/kovidgoyal/chroma/rgb"
)

var _ = fmt.Print

func parse_color(spec string) (ans rgb.Rgb[float64], err error) {
	if c, found := rgb.Named[float64](spec); found {
		return c, nil
	}
	hex := strings.TrimPrefix(spec, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return ans, fmt.Errorf("not a color name or #RRGGBB value: %s", spec)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ans, fmt.Errorf("not a color name or #RRGGBB value: %s", spec)
	}
	return rgb.FromUint8[float64](uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/convert color-name-or-#RRGGBB ...")
		os.Exit(1)
	}
	srgb := colorspace.NewSRGB[float64]()
	to_p3 := colorspace.NewConverter(srgb, colorspace.NewDisplayP3[float64]())
	to_adobe := colorspace.NewConverter(srgb, colorspace.NewAdobeRGB[float64]())
	for _, spec := range os.Args[1:] {
		var c rgb.Rgb[float64]
		if c, err = parse_color(spec); err != nil {
			return
		}
		x := srgb.ColorToXyz(c)
		fmt.Println(spec, c.AsSharp())
		fmt.Println("  sRGB:     ", c)
		fmt.Println("  HSV:      ", hsv.FromRgb(c))
		fmt.Println("  XYZ:      ", x)
		fmt.Println("  Lab:      ", lab.FromXyz(x, srgb.WhitePoint()))
		fmt.Println("  Display P3:", to_p3.Convert(c))
		fmt.Println("  Adobe RGB: ", to_adobe.Convert(c))
	}
}
