package handlers

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		percentage int
		wantText   string
	}{
		{100, "Perfect!"},
		{99, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Keep Trying"},
		{40, "Keep Trying"},
		{39, "Keep Learning"},
		{0, "Keep Learning"},
	}

	for _, tt := range tests {
		icon, text := grade(tt.percentage)
		if text != tt.wantText {
			t.Errorf("grade(%d) = %q, want %q", tt.percentage, text, tt.wantText)
		}
		if icon == "" {
			t.Errorf("grade(%d) returned an empty icon", tt.percentage)
		}
	}
}
