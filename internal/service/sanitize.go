package service

import "github.com/microcosm-cc/bluemonday"

// descriptionPolicy is the HTML allowlist applied to job descriptions.
// It keeps user-generated formatting (lists, links, emphasis) and strips
// scripts, event handlers and embedded objects. Sanitizing already sanitized
// input is a no-op.
var descriptionPolicy = bluemonday.UGCPolicy()

// SanitizeDescription returns description with disallowed HTML removed.
func SanitizeDescription(description string) string {
	return descriptionPolicy.Sanitize(description)
}
