// Package environment names the deployment environments the CLI and logger
// recognise and parses them from configuration strings.
package environment
