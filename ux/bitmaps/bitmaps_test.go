package bitmaps

import "testing"

func TestPackRowMajorLSBFirst(t *testing.T) {
	g := pack([]string{
		"#..",
		".#.",
		"..#",
	})
	if g.Width != 3 || g.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Width, g.Height)
	}
	// Bits 0, 4, 8 set.
	if len(g.Bitmap) != 2 || g.Bitmap[0] != 0x11 || g.Bitmap[1] != 0x01 {
		t.Fatalf("bitmap = % x, want 11 01", g.Bitmap)
	}
	for i := 0; i < 3; i++ {
		if !g.Lit(i, i) {
			t.Fatalf("(%d,%d) not lit", i, i)
		}
	}
	if g.Lit(1, 0) || g.Lit(5, 5) {
		t.Fatalf("unexpected lit pixel")
	}
}

func TestInvert(t *testing.T) {
	inv := Left.Invert()
	if !inv.Inverted || Left.Inverted {
		t.Fatalf("Invert() must return a flipped copy")
	}
	for y := 0; y < Left.Height; y++ {
		for x := 0; x < Left.Width; x++ {
			if inv.Lit(x, y) == Left.Lit(x, y) {
				t.Fatalf("(%d,%d) unchanged by Invert", x, y)
			}
		}
	}
	if inv.Invert().Inverted {
		t.Fatalf("double Invert() is still inverted")
	}
}

func TestPaletteShapes(t *testing.T) {
	tests := []struct {
		id   ID
		w, h int
	}{
		{IDLeft, 4, 7},
		{IDRight, 4, 7},
		{IDUp, 7, 4},
		{IDDown, 7, 4},
		{IDCheck, 14, 14},
		{IDCross, 14, 14},
		{IDBack, 14, 14},
		{IDLogo, 14, 14},
	}
	for _, tt := range tests {
		g, ok := ByID(tt.id)
		if !ok {
			t.Fatalf("ByID(%v) missing", tt.id)
		}
		if g.Width != tt.w || g.Height != tt.h {
			t.Fatalf("%v = %dx%d, want %dx%d", tt.id, g.Width, g.Height, tt.w, tt.h)
		}
		if len(g.Bitmap) != Bytes(tt.w, tt.h) {
			t.Fatalf("%v has %d bytes, want %d", tt.id, len(g.Bitmap), Bytes(tt.w, tt.h))
		}
	}
	if _, ok := ByID(IDNone); ok {
		t.Fatalf("ByID(IDNone) ok = true")
	}
	if _, ok := ByID(200); ok {
		t.Fatalf("ByID(200) ok = true")
	}
}

func TestArtRowsAreRectangular(t *testing.T) {
	for name, art := range map[string][]string{
		"left": leftArt, "right": rightArt, "up": upArt, "down": downArt,
		"check": checkArt, "cross": crossArt, "back": backArt, "logo": logoArt,
	} {
		for i, row := range art {
			if len(row) != len(art[0]) {
				t.Fatalf("%s row %d has width %d, want %d", name, i, len(row), len(art[0]))
			}
		}
	}
}
