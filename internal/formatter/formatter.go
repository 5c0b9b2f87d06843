// Package formatter renders a compression summary for different consumers.
package formatter

import "github.com/yildizm/LogPress/internal/compress"

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(summary *compress.Summary) ([]byte, error)
}
