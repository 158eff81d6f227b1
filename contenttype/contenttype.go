// Package contenttype decides which handling strategy a declared Content-Type selects.
package contenttype

import (
	"mime"
	"strings"
)

const (
	TextPlain   = "text/plain"
	TextHTML    = "text/html"
	TextYAML    = "text/yaml"
	JSON        = "application/json"
	XML         = "application/xml"
	YAML        = "application/yaml"
	XYAML       = "application/x-yaml"
	TOML        = "application/toml"
	Form        = "application/x-www-form-urlencoded"
	OctetStream = "application/octet-stream"
	PNG         = "image/png"
	JPEG        = "image/jpeg"
)

// Policy - how a declared header is compared with an expected type.
type Policy int

const (
	// Substring accepts the header when it contains the expected type anywhere.
	Substring Policy = iota
	// Exact compares the parsed media type, parameters stripped, case-insensitively.
	Exact
)

// Match returns the first expected type the declared header satisfies under the policy.
func Match(declared string, policy Policy, expected ...string) (string, bool) {
	if declared == "" {
		return "", false
	}
	var essence string
	if policy == Exact {
		essence = MediaType(declared)
	}
	for _, want := range expected {
		switch policy {
		case Substring:
			if strings.Contains(declared, want) {
				return want, true
			}
		case Exact:
			if essence == want {
				return want, true
			}
		}
	}
	return "", false
}

// MediaType strips parameters and lowercases the type. Unparseable headers fall back to
// everything before the first ';'.
func MediaType(declared string) string {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		mediaType, _, _ = strings.Cut(declared, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return mediaType
}

// Kind - echo strategy for a request body.
type Kind int

const (
	Opaque Kind = iota
	KindJSON
	KindForm
	KindYAML
	KindTOML
)

// Classify maps a declared content type onto the closed set of structured kinds;
// everything else is opaque.
func Classify(declared string) Kind {
	switch MediaType(declared) {
	case JSON:
		return KindJSON
	case Form:
		return KindForm
	case YAML, XYAML, TextYAML:
		return KindYAML
	case TOML:
		return KindTOML
	default:
		return Opaque
	}
}
