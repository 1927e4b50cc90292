// Package config loads and validates application configuration.
//
// Values come from built-in defaults, an optional config.yaml, an optional
// .env file and QAPI_-prefixed environment variables, in increasing order of
// precedence. Loading fails fast when the result does not pass validation.
package config
