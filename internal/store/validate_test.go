package store_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/econpulse/bookmarkd/internal/store"
)

func TestValidateListName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"simple", "Houston Deals", "Houston Deals", false},
		{"trims whitespace", "  Market Trends  ", "Market Trends", false},
		{"single char", "a", "a", false},
		{"max length", strings.Repeat("x", 50), strings.Repeat("x", 50), false},
		{"multibyte under limit", "Экономические показатели РФ 30", "Экономические показатели РФ 30", false},
		{"multibyte at limit", strings.Repeat("ж", 50), strings.Repeat("ж", 50), false},
		{"multibyte too long", strings.Repeat("ж", 51), "", true},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("x", 51), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ValidateListName(tt.in)
			if tt.wantErr {
				if !errors.Is(err, store.ErrNameInvalid) {
					t.Errorf("ValidateListName(%q) = %v, want ErrNameInvalid", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateListName(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ValidateListName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
