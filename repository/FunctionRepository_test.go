package repository

import (
	"regexp"
	"testing"
)

func TestReferenceFormats(t *testing.T) {
	tests := []struct {
		name    string
		gen     func() string
		pattern string
	}{
		{"project", GenerateProjectReference, `^PRJ-[A-Z]{2}\d{5}$`},
		{"chantier", GenerateChantierReference, `^CH-[A-Z]{2}\d{5}$`},
		{"quote", GenerateQuoteReference, `^DEV-[A-Z]{2}\d{5}$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			for i := 0; i < 20; i++ {
				ref := tt.gen()
				if !re.MatchString(ref) {
					t.Fatalf("reference %q does not match %s", ref, tt.pattern)
				}
			}
		})
	}
}
