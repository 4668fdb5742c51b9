package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required("Title", 10)

	assert.Empty(t, v("hello"))
	assert.Equal(t, "Title is required.", v(""))
	assert.Equal(t, "Title is required.", v("   "))
	assert.Equal(t, "Title cannot exceed 10 characters.", v(strings.Repeat("x", 11)))
	// rune count, not byte count
	assert.Empty(t, v("ñoñería123"))
}

func TestEmail(t *testing.T) {
	v := Email("Email")

	assert.Empty(t, v("jobs@example.com"))
	assert.Empty(t, v("Jobs <jobs@example.com>"))
	assert.Equal(t, "Email is required.", v(""))
	assert.Equal(t, "Email is not a valid email address.", v("not-an-email"))
}

func TestOptional(t *testing.T) {
	v := Optional(Email("Email"))

	assert.Empty(t, v(""))
	assert.Empty(t, v("jobs@example.com"))
	assert.NotEmpty(t, v("nope"))
}

func TestHTTPSURL(t *testing.T) {
	v := HTTPSURL("URL", 100)

	assert.Empty(t, v("https://example.com/jobs"))
	assert.Empty(t, v("http://example.com"))
	assert.NotEmpty(t, v(""))
	assert.NotEmpty(t, v("ftp://example.com"))
	assert.NotEmpty(t, v("example com"))
	assert.NotEmpty(t, v("https://"+strings.Repeat("x", 100)+".com"))
}
