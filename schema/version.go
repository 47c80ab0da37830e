/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides DTCG schema generation handling.
package schema

import "fmt"

// Version represents a design tokens schema generation.
type Version int

const (
	// Unknown represents an undetected or unrecognized schema version.
	Unknown Version = iota

	// V2022 represents the legacy 2022 draft schema: $type may be inherited
	// from ancestor groups and colors are plain strings.
	V2022

	// V2025 represents the 2025 schema: every token carries its own $type
	// and colors are structured objects.
	V2025
)

// String returns the string representation of the schema version.
func (v Version) String() string {
	switch v {
	case V2022:
		return "2022"
	case V2025:
		return "2025"
	default:
		return "unknown"
	}
}

// URL returns the JSON Schema URL for this version.
func (v Version) URL() string {
	switch v {
	case V2022:
		return "https://design-tokens.github.io/community-group/format/tokens.schema.json"
	case V2025:
		return "https://www.designtokens.org/schemas/2025.json"
	default:
		return ""
	}
}

// FromURL returns the schema version from a JSON Schema URL.
func FromURL(url string) (Version, error) {
	switch url {
	case "https://design-tokens.github.io/community-group/format/tokens.schema.json":
		return V2022, nil
	case "https://www.designtokens.org/schemas/2025.json":
		return V2025, nil
	default:
		return Unknown, fmt.Errorf("%w: unrecognized schema URL %s", ErrUnknownVersion, url)
	}
}

// FromString returns the schema version from a string representation.
func FromString(s string) (Version, error) {
	switch s {
	case "2022", "v2022", "legacy", "draft":
		return V2022, nil
	case "2025", "v2025":
		return V2025, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownVersion, s)
	}
}
