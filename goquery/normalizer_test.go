package goquery_test

import (
	"strings"
	"testing"

	csgoquery "github.com/mwalkiewicz/corpscan/goquery"
	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Text(t *testing.T) {
	t.Parallel()

	n := csgoquery.NewNormalizer()

	t.Run("strips scripts styles and navigation", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Ignored</title></head><body>
			<nav><a href="/">Menu entry</a></nav>
			<script>var tracked = true;</script>
			<style>.hidden { display: none }</style>
			<p>Operated by Acme Widgets Ltd.</p>
		</body></html>`

		text := n.Text(html)
		assert.Contains(t, text, "Operated by Acme Widgets Ltd.")
		assert.NotContains(t, text, "Menu entry")
		assert.NotContains(t, text, "tracked")
		assert.NotContains(t, text, "display")
		assert.NotContains(t, text, "Ignored")
	})

	t.Run("keeps footer content", func(t *testing.T) {
		t.Parallel()

		html := `<body><p>Welcome.</p><footer>© 2023 Acme Widgets Ltd</footer></body>`
		text := n.Text(html)
		assert.Contains(t, text, "© 2023 Acme Widgets Ltd")
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		text := n.Text("<p>Acme \n\t  Widgets</p>")
		assert.Equal(t, "Acme Widgets", text)
	})

	t.Run("separates text from adjacent elements", func(t *testing.T) {
		t.Parallel()

		text := n.Text("<p>Acme</p><p>Widgets</p>")
		assert.Equal(t, "Acme Widgets", text)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"<body><nav>skip</nav><p>Operated by Acme Ltd</p><footer>© 2023 Acme Ltd</footer></body>",
			"plain text already",
			"",
		}
		for _, in := range inputs {
			once := n.Text(in)
			assert.Equal(t, once, n.Text(once), "Text not idempotent for %q", in)
		}
	})

	t.Run("malformed markup degrades without error", func(t *testing.T) {
		t.Parallel()

		text := n.Text("<div><p>Acme Widgets <b>Ltd</div>")
		assert.Contains(t, text, "Acme Widgets")
		assert.Contains(t, text, "Ltd")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, n.Text(""))
	})

	t.Run("large input stays linear", func(t *testing.T) {
		t.Parallel()

		html := "<body>" + strings.Repeat("<p>Acme Widgets Ltd</p>", 500) + "</body>"
		text := n.Text(html)
		assert.True(t, strings.HasPrefix(text, "Acme Widgets Ltd"))
	})
}
