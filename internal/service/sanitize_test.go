package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain formatting survives",
			in:   "<p>We are hiring a <strong>Python</strong> dev.</p>",
			want: "<p>We are hiring a <strong>Python</strong> dev.</p>",
		},
		{
			name: "script tags removed",
			in:   `<p>hi</p><script>alert("x")</script>`,
			want: "<p>hi</p>",
		},
		{
			name: "event handlers stripped",
			in:   `<img src="x" onerror="alert(1)">`,
			want: `<img src="x">`,
		},
		{
			name: "lists and links kept",
			in:   `<ul><li><a href="https://example.com">apply</a></li></ul>`,
			want: `<ul><li><a href="https://example.com" rel="nofollow">apply</a></li></ul>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeDescription(tt.in))
		})
	}
}

func TestSanitizeDescription_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>plain</p>",
		`<p>hi</p><script>alert("x")</script>`,
		`<a href="https://example.com">link</a>`,
		"no markup at all",
	}
	for _, in := range inputs {
		once := SanitizeDescription(in)
		twice := SanitizeDescription(once)
		assert.Equal(t, once, twice, "sanitizing twice must equal sanitizing once for %q", in)
	}
}
