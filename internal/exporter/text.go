// =============================================================================
// Sales Analytics - Report File Writer
// =============================================================================

package exporter

import (
	"fmt"
	"os"
)

// WriteReport writes the rendered report document to disk in a single
// whole-document write.
func WriteReport(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
