package errors

import (
	"strings"
	"testing"
)

func TestValidateItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "A", false},
		{"underscore", "side_bar", false},
		{"digits", "row2", false},
		{"generated", "@unnamed_3", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"dot", "A.left", true},
		{"space", "side bar", true},
		{"operator", "a-b", true},
		{"leading digit", "2a", true},
		{"control char", "a\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLayout) {
				t.Errorf("ValidateItemName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidLayout)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 1024, false},
		{"maximum", MaxContainerSize, false},
		{"negative", -1, true},
		{"too large", MaxContainerSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize("width", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "layouts/app.json", false},
		{"absolute", "/tmp/app.toml", false},
		{"empty", "", true},
		{"traversal", "../secret", true},
		{"nested traversal", "layouts/../../secret", true},
		{"dots in name", "page..v2.json", false},
		{"null byte", "a\x00b", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
