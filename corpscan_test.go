package corpscan_test

import (
	"testing"

	"github.com/mwalkiewicz/corpscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := corpscan.Errorf(corpscan.ENOTFOUND, "domain %q not tracked", "example.com")

	assert.Equal(t, corpscan.ENOTFOUND, corpscan.ErrorCode(err))
	assert.Equal(t, "domain \"example.com\" not tracked", corpscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, corpscan.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, corpscan.ErrorMessage(nil))
}

func TestURLVariants(t *testing.T) {
	t.Parallel()

	t.Run("bare domain gets www variants appended", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{
			"https://example.com",
			"http://example.com",
			"https://www.example.com",
			"http://www.example.com",
		}, corpscan.URLVariants("example.com"))
	})

	t.Run("www domain gets stripped variants appended", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{
			"https://www.example.org",
			"http://www.example.org",
			"https://example.org",
			"http://example.org",
		}, corpscan.URLVariants("www.example.org"))
	})
}

func TestAnalysis_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()

		a := &corpscan.Analysis{Domain: "example.com", Status: corpscan.StatusPending}
		assert.NoError(t, a.Validate())
	})

	t.Run("missing domain", func(t *testing.T) {
		t.Parallel()

		a := &corpscan.Analysis{Status: corpscan.StatusPending}
		err := a.Validate()
		assert.Equal(t, corpscan.EINVALID, corpscan.ErrorCode(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()

		a := &corpscan.Analysis{Domain: "example.com", Status: corpscan.Status("bogus")}
		err := a.Validate()
		assert.Equal(t, corpscan.EINVALID, corpscan.ErrorCode(err))
	})
}
