package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	LoadFontWithSize(FontName("test-face"), goregular.TTF, 14)

	if face := FontName("test-face").Get(); face == nil {
		t.Error("loaded face is nil")
	}
}

func TestLoadFontRejectsBadData(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed TTF data")
		}
	}()
	LoadFontWithSize(FontName("bad-face"), []byte("not a font"), 14)
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font name")
		}
	}()
	FontName("never-loaded").Get()
}
