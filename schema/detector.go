/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DetectionConfig provides configuration for schema version detection.
type DetectionConfig struct {
	// DefaultVersion is used when no other detection method succeeds.
	DefaultVersion Version
}

// DetectVersion detects the schema version from document content.
// Priority order:
// 1. $schema field in the document root
// 2. Config default version
// 3. Duck typing (structured color objects are 2025-only)
// 4. Default to the tolerant 2022 schema
func DetectVersion(content []byte, config *DetectionConfig) (Version, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return Unknown, fmt.Errorf("invalid YAML/JSON: %w", err)
	}

	if schemaURL, ok := data["$schema"].(string); ok {
		version, err := FromURL(schemaURL)
		if err == nil {
			return version, nil
		}
	}

	if config != nil && config.DefaultVersion != Unknown {
		return config.DefaultVersion, nil
	}

	if hasStructuredColors(data) {
		return V2025, nil
	}

	return V2022, nil
}

// hasStructuredColors checks for 2025-style structured color values
// anywhere in the document.
func hasStructuredColors(obj any) bool {
	switch v := obj.(type) {
	case map[string]any:
		if colorType, ok := v["$type"].(string); ok && colorType == "color" {
			if value, ok := v["$value"].(map[string]any); ok {
				if _, hasColorSpace := value["colorSpace"]; hasColorSpace {
					return true
				}
			}
		}
		for _, child := range v {
			if hasStructuredColors(child) {
				return true
			}
		}
	case []any:
		for _, elem := range v {
			if hasStructuredColors(elem) {
				return true
			}
		}
	}
	return false
}
