package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"boardmoves/internal/premove"
)

func near(a, b color.Color, tol int) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	d := func(x, y uint32) int {
		v := int(x>>8) - int(y>>8)
		if v < 0 {
			v = -v
		}
		return v
	}
	return d(ar, br) <= tol && d(ag, bg) <= tol && d(ab, bb) <= tol
}

func TestSVGHighlights(t *testing.T) {
	dims := premove.Dimensions{Width: 8, Height: 8}
	pieces := premove.Pieces{"e1": {Role: premove.RoleKing, Color: premove.White}}
	svg := string(SVG(pieces, dims, Options{Origin: "e1", Dests: []premove.Key{"e2", "d1"}}))

	if n := strings.Count(svg, "<rect"); n != 64 {
		t.Fatalf("rects=%d want 64", n)
	}
	if !strings.Contains(svg, originColor) {
		t.Fatalf("origin square not highlighted")
	}
	if n := strings.Count(svg, destColor); n != 2 {
		t.Fatalf("dest markers=%d want 2", n)
	}
}

func TestPNGSize(t *testing.T) {
	cases := []struct {
		dims       premove.Dimensions
		size       int
		wantW, wpx int
	}{
		{premove.Dimensions{Width: 8, Height: 8}, 400, 400, 400},
		{premove.Dimensions{Width: 9, Height: 10}, 400, 360, 400},
		{premove.Dimensions{Width: 3, Height: 4}, 0, 360, 480},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := PNG(&buf, premove.Pieces{}, tc.dims, Options{Size: tc.size}); err != nil {
			t.Fatalf("%s: %v", tc.dims, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: decode: %v", tc.dims, err)
		}
		b := img.Bounds()
		if b.Dx() != tc.wantW || b.Dy() != tc.wpx {
			t.Fatalf("%s: got %dx%d want %dx%d", tc.dims, b.Dx(), b.Dy(), tc.wantW, tc.wpx)
		}
	}
}

func TestImageColors(t *testing.T) {
	dims := premove.Dimensions{Width: 8, Height: 8}
	img, err := Image(premove.Pieces{}, dims, Options{Size: 80, Origin: "a1", Dests: []premove.Key{"h8"}})
	if err != nil {
		t.Fatal(err)
	}
	// 每格 10px；a1 在左下角
	if !near(img.At(2, 77), color.RGBA{0xcd, 0xd2, 0x6a, 0xff}, 24) {
		t.Fatalf("a1 corner: %v", img.At(2, 77))
	}
	// h8 本身是深色格，中心的标记点把红色分量压下去
	if r, _, _, _ := img.At(75, 5).RGBA(); r>>8 > 0x90 {
		t.Fatalf("h8 centre has no destination marker: %v", img.At(75, 5))
	}
	if !near(img.At(12, 77), color.RGBA{0xf0, 0xd9, 0xb5, 0xff}, 24) {
		t.Fatalf("b1 is a light square: %v", img.At(12, 77))
	}

	flipped, err := Image(premove.Pieces{}, dims, Options{Size: 80, Origin: "a1", Flip: true})
	if err != nil {
		t.Fatal(err)
	}
	if !near(flipped.At(77, 2), color.RGBA{0xcd, 0xd2, 0x6a, 0xff}, 24) {
		t.Fatalf("flipped a1 must be top right: %v", flipped.At(77, 2))
	}
}

func TestBadDimensions(t *testing.T) {
	if _, err := Image(nil, premove.Dimensions{}, Options{}); err == nil {
		t.Fatalf("zero dimensions must fail")
	}
}
