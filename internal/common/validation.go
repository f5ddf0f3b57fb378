package common

import (
	"fmt"
	"slices"
)

// ValidateOutputFormat checks format against the configured allow list.
// An empty list means no restriction.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 || slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// GetSupportedFormats returns the list of supported formats, used by
// shell completion for the --format flag.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
