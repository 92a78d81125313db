// Package configs provides the embedded user configuration template.
//
// The template is embedded at build time with //go:embed so it ships in
// every distribution. 'gitignore-gen config init' writes it to
// ~/.config/gitignore-gen/config.yaml (see internal/config for the
// resolution order: defaults, then user config, then GITIGNORE_GEN_*
// environment variables).
package configs

import _ "embed"

// UserConfigTemplate is the annotated starting point for the user
// configuration file, created by 'gitignore-gen config init'.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string
