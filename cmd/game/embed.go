package main

import "embed"

// gameFS holds the bundled configs and sprite frames.
//
//go:embed configs assets
var gameFS embed.FS
