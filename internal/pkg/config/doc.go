// Package config loads and validates the site configuration.
//
// Settings come from a YAML file read with viper and are overlaid with secrets
// taken from the environment (Stripe keys, the session signing secret, API keys),
// so the file can be committed while credentials stay out of it. Every settings
// section validates itself before the service starts.
package config
