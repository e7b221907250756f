package extract_test

import (
	"testing"

	"github.com/mwalkiewicz/corpscan/extract"
	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name passes through", "Acme Widgets Ltd", "Acme Widgets Ltd"},
		{"strips embedded markup", "Acme<br>Widgets Ltd", "Acme Widgets Ltd"},
		{"removes rights-reserved boilerplate", "Acme Widgets Ltd. All Rights Reserved", "Acme Widgets Ltd"},
		{"removes navigation words", "Home Acme Widgets Ltd Contact", "Acme Widgets Ltd"},
		{"boilerplate matches whole words only", "Abouterra Ltd", "Abouterra Ltd"},
		{"trims trailing punctuation", "Acme Widgets Ltd,", "Acme Widgets Ltd"},
		{"collapses whitespace", "Acme   Widgets\n Ltd", "Acme Widgets Ltd"},
		{"too short after cleanup", "Us", ""},
		{"letterless remainder", "2024", ""},
		{"pure boilerplate", "Privacy Policy", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.Clean(tt.in))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Acme Widgets Ltd",
		"Acme Widgets Ltd. All Rights Reserved",
		"<b>Acme</b> Widgets Ltd;",
		"Privacy Policy",
		"",
		"  Beta   Corp.  ",
	}

	for _, in := range inputs {
		once := extract.Clean(in)
		assert.Equal(t, once, extract.Clean(once), "Clean not idempotent for %q", in)
	}
}
