package scenes

import "testing"

func TestFontManager_Cache(t *testing.T) {
	fm, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager() error = %v", err)
	}

	if fm.UI() != fm.UI() {
		t.Error("same size and weight should return the cached face")
	}
	if fm.UI() == fm.Face(false, FontSizeUI) {
		t.Error("bold and regular faces must be cached separately")
	}
	if fm.Big().Size != FontSizeBig {
		t.Errorf("Big().Size = %v, want %v", fm.Big().Size, FontSizeBig)
	}
	if fm.Debug() == nil {
		t.Error("debug face should be available")
	}
}
