// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Dataset sources may be local paths or HTTP URLs; map scale bounds fall
// back to the standard ranges when omitted.
package config
