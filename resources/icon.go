package resources

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	iconName = "eyetimer.png"
	iconSize = 64
)

var (
	background = color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	sclera     = color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	iris       = color.NRGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff}
	pupil      = color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
)

var (
	iconOnce     sync.Once
	iconBytes    []byte
	iconResource fyne.Resource
)

// Icon returns the app icon, used for the window, tray and favicon.
func Icon() fyne.Resource {
	iconOnce.Do(renderIcon)
	return iconResource
}

// IconPNG returns the encoded icon.
func IconPNG() []byte {
	iconOnce.Do(renderIcon)
	return iconBytes
}

func renderIcon() {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	center := float64(iconSize-1) / 2
	radius := float64(iconSize) / 2

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			img.SetNRGBA(x, y, pixelAt(dx, dy, radius))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory NRGBA image cannot fail.
		panic(err)
	}
	iconBytes = buf.Bytes()
	iconResource = fyne.NewStaticResource(iconName, iconBytes)
}

// pixelAt draws an eye: almond sclera over a round badge, iris and pupil.
func pixelAt(dx, dy, radius float64) color.NRGBA {
	distance := math.Hypot(dx, dy)
	if distance > radius {
		return color.NRGBA{}
	}
	switch {
	case distance <= radius*0.12:
		return pupil
	case distance <= radius*0.3:
		return iris
	}
	// Almond: intersection of two circles offset vertically.
	offset := radius * 0.55
	lens := radius * 0.95
	if math.Hypot(dx, dy-offset) <= lens && math.Hypot(dx, dy+offset) <= lens {
		return sclera
	}
	return background
}
