package extract_test

import (
	"testing"

	"github.com/mwalkiewicz/corpscan/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := extract.NewExtractor()

	t.Run("copyright notice with legal suffix", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("© 2023 Acme Widgets Ltd. All rights reserved.")

		require.NotEmpty(t, cands)
		assert.Equal(t, "Acme Widgets Ltd", cands[0].Value)
		assert.Equal(t, "copyright-suffix", cands[0].Rule)
	})

	t.Run("copyright year range", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("Copyright 2019-2024 Borealis Systems GmbH")

		require.NotEmpty(t, cands)
		assert.Equal(t, "Borealis Systems GmbH", cands[0].Value)
	})

	t.Run("data controller declaration", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("For GDPR purposes the data controller is Nimbus Analytics Limited and can be reached by post.")

		require.NotEmpty(t, cands)
		assert.Equal(t, "Nimbus Analytics Limited", cands[0].Value)
		assert.Equal(t, "data-controller", cands[0].Rule)
	})

	t.Run("operated by declaration", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("This website is owned and operated by Delta Holdings Ltd under licence.")

		require.NotEmpty(t, cands)
		assert.Equal(t, "Delta Holdings Ltd", cands[0].Value)
		assert.Equal(t, "operated-by", cands[0].Rule)
	})

	t.Run("registration number after entity", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("Weyland Services Company Registration Number 0442211")

		require.NotEmpty(t, cands)
		assert.Equal(t, "Weyland Services", cands[0].Value)
		assert.Equal(t, "registration-number-prefix", cands[0].Rule)
	})

	t.Run("vat number before entity", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("VAT Number 998877 - Orchid Press")

		require.NotEmpty(t, cands)
		assert.Equal(t, "Orchid Press", cands[0].Value)
		assert.Equal(t, "vat-number", cands[0].Rule)
	})

	t.Run("footer scoped entity", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><footer class="site-footer"><p>Made by Quarterdeck Software LLC in Hamburg</p></footer></body></html>`
		cands := e.Extract(html)

		require.NotEmpty(t, cands)
		assert.Equal(t, "footer", cands[0].Rule)
		assert.Contains(t, cands[0].Value, "Quarterdeck Software LLC")
	})

	t.Run("meta author and og site name", func(t *testing.T) {
		t.Parallel()

		html := `<head><meta name="author" content="Halcyon Labs Inc"><meta property="og:site_name" content="Halcyon Labs Inc"></head>`
		cands := e.Extract(html)

		require.Len(t, cands, 2)
		assert.Equal(t, "meta-author", cands[0].Rule)
		assert.Equal(t, "og-site-name", cands[1].Rule)
		assert.Equal(t, "Halcyon Labs Inc", cands[0].Value)
	})

	t.Run("matches spanning line breaks", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("© 2023\nAcme Widgets Ltd")
		require.NotEmpty(t, cands)
		assert.Equal(t, "Acme Widgets Ltd", cands[0].Value)
	})

	t.Run("rejects short boilerplate capture", func(t *testing.T) {
		t.Parallel()

		// "Privacy Policy" matches the suffix-free copyright pattern
		// but fails validation: boilerplate phrase under 30 chars.
		cands := e.Extract("© 2023 Privacy Policy")
		assert.Empty(t, cands)
	})

	t.Run("rejects letterless capture", func(t *testing.T) {
		t.Parallel()

		cands := e.Extract("© 2023 1,000,000")
		assert.Empty(t, cands)
	})

	t.Run("empty content yields no candidates", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, e.Extract(""))
	})

	t.Run("one rule can match multiple times", func(t *testing.T) {
		t.Parallel()

		text := "© 2022 Beta Corp footer one. © 2022 Beta Corp footer two."
		cands := e.Extract(text)

		var suffixMatches int
		for _, c := range cands {
			if c.Rule == "copyright-suffix" {
				suffixMatches++
			}
		}
		assert.Equal(t, 2, suffixMatches)
	})
}

func TestExtractor_ExtractName(t *testing.T) {
	t.Parallel()

	e := extract.NewExtractor()

	t.Run("copyright scenario end to end", func(t *testing.T) {
		t.Parallel()

		name := e.ExtractName("© 2023 Acme Widgets Ltd. All rights reserved.")
		assert.Equal(t, "Acme Widgets Ltd", name)
	})

	t.Run("deterministic over repeated calls", func(t *testing.T) {
		t.Parallel()

		text := `<footer>© 2022 Beta Corp</footer> operated by Gamma Partners Inc. © 2022 Beta Corp`
		first := e.ExtractName(text)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, e.ExtractName(text))
		}
	})

	t.Run("no match yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, e.ExtractName("Nothing legal to see here."))
	})
}
