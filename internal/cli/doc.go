// Package cli implements the infovalid command line on top of
// github.com/spf13/cobra.
//
//	infovalid check <kind> <value>...   check values against one format
//	infovalid batch [file]              check a YAML document of kind: values
//	infovalid kinds                     list the supported formats
//
// Results go to stdout as text or JSON (--output, or INFOVALID_OUTPUT).
// Execute returns ExitOK when every value conforms, ExitFailed when any value
// does not, and ExitError for usage, input or configuration problems.
package cli
