// Package templates contains embedded template files.
package templates

import (
	_ "embed"
)

//go:embed config.template

// ConfigYAML contains the embedded configuration template.
var ConfigYAML []byte
