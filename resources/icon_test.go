package resources

import (
	"bytes"
	"image/png"
	"testing"
)

func TestIconPNG(t *testing.T) {
	data := IconPNG()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode icon: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != iconSize || bounds.Dy() != iconSize {
		t.Errorf("icon size = %v", bounds)
	}

	_, _, _, alpha := img.At(0, 0).RGBA()
	if alpha != 0 {
		t.Error("corner should be transparent")
	}
	if got := img.At(iconSize/2, iconSize/2); got != pupil {
		r, g, b, _ := got.RGBA()
		pr, pg, pb, _ := pupil.RGBA()
		if r != pr || g != pg || b != pb {
			t.Errorf("center pixel = %v, want pupil", got)
		}
	}
}

func TestIconResourceCached(t *testing.T) {
	first := Icon()
	if first.Name() != iconName {
		t.Errorf("Name() = %q", first.Name())
	}
	if first != Icon() {
		t.Error("Icon() should return the cached resource")
	}
	if !bytes.Equal(first.Content(), IconPNG()) {
		t.Error("resource content should match IconPNG()")
	}
}
