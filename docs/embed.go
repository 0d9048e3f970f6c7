// Copyright © 2025 The Peano authors

// Package docs embeds the peano language reference for use by the CLI.
package docs

import _ "embed"

//go:embed lang.md
var LangGuide string
