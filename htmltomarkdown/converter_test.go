package htmltomarkdown_test

import (
	"testing"

	"github.com/mwalkiewicz/corpscan"
	"github.com/mwalkiewicz/corpscan/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a policy page", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Privacy Policy</h1><p>The data controller is <strong>Acme Widgets Ltd</strong>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)
		require.NoError(t, err)
		assert.Contains(t, md, "# Privacy Policy")
		assert.Contains(t, md, "Acme Widgets Ltd")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/contact">Contact us</a>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)
		require.NoError(t, err)
		assert.Contains(t, md, "[Contact us](https://example.com/contact)")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")
		assert.Equal(t, corpscan.EINVALID, corpscan.ErrorCode(err))
	})
}
