package canvas

import (
	"image/color"
	"testing"
)

func TestARGBPacking(t *testing.T) {
	tests := []struct {
		name string
		col  Color
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{R: 0, G: 0, B: 0, A: 0xFF}},
		{"white", White, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"transparent", Transparent, color.NRGBA{}},
		{"argb", ARGB(0x80, 0x11, 0x22, 0x33), color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{"rgb opaque", RGB(0x11, 0x22, 0x33), color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.col.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"six digits", "123456", 0xFF123456, false},
		{"six digits with hash", "#123456", 0xFF123456, false},
		{"eight digits", "80123456", 0x80123456, false},
		{"eight digits with hash", "#80123456", 0x80123456, false},
		{"white", "FFFFFF", White, false},
		{"black", "#000000", Black, false},

		{"empty", "", 0, true},
		{"too short", "123", 0, true},
		{"seven digits", "1234567", 0, true},
		{"not hex", "12345G", 0, true},
		{"css name", "red", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %#x, want %#x", tt.input, uint32(got), uint32(tt.want))
			}
		})
	}
}
