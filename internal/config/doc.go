// Package config manages user-level settings stored at ~/.packsmith/config.yaml.
// Values such as the default author or minimum engine version pre-fill the
// prompts of "packsmith new", and every key can be overridden with a
// PACKSMITH_* environment variable.
package config
