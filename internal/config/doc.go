// Package config loads the infovalid CLI settings from environment variables,
// optionally seeded from .env files via github.com/joho/godotenv and parsed
// with github.com/caarlos0/env/v11.
//
// Variables:
//
//	INFOVALID_ENV         development | staging | production (default development)
//	INFOVALID_LOG_LEVEL   debug | info | warn | error        (default warn)
//	INFOVALID_LOG_FORMAT  text | json                        (default text)
//	INFOVALID_OUTPUT      text | json                        (default text)
//
// The validator predicates themselves take no configuration.
package config
