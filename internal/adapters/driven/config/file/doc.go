// Package file persists configuration on the local filesystem under
// ~/.oracle.
//
// ConfigStore keeps settings in a TOML file, and PromptStore keeps the
// system prompt templates as editable text files seeded from embedded
// defaults.
package file
