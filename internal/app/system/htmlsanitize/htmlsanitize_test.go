package htmlsanitize_test

import (
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/htmlsanitize"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "DPS Bokaro", "DPS Bokaro"},
		{"apostrophe kept", "St. Xavier's School", "St. Xavier's School"},
		{"ampersand kept", "Arts & Science", "Arts & Science"},
		{"tags stripped", "<b>Holy</b> Cross", "Holy Cross"},
		{"script removed", "Sector 4<script>alert(1)</script>", "Sector 4"},
		{"trimmed", "  Sector 2  ", "Sector 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
