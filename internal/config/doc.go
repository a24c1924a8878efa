// Package config loads application settings.
//
// Settings come from three layers, later layers winning: built-in
// defaults, an optional TOML file, and environment variables. The
// environment carries the translation endpoint credentials so they
// stay out of files:
//
//	TRANSLATION_API_URL          endpoint URL (required somewhere)
//	TRANSLATION_API_KEY          optional API key
//	TRANSLATION_API_AUTH_HEADER  optional header name for the key
//
// The endpoint URL is the one setting with no default; Load fails
// without it.
package config
