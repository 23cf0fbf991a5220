// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/temirov/codeclip/internal/types"
)

// ErrUnsupported is wrapped in the ClipboardError returned when no clipboard
// utility is available on the host.
var ErrUnsupported = errors.New("no clipboard utility available")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	writeAll    func(text string) error
	unsupported func() bool
}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{
		writeAll:    clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Copy writes text to the system clipboard. Every failure is a *types.ClipboardError.
func (service *Service) Copy(text string) error {
	if service.unsupported != nil && service.unsupported() {
		return &types.ClipboardError{Err: ErrUnsupported}
	}
	if writeError := service.writeAll(text); writeError != nil {
		return &types.ClipboardError{Err: writeError}
	}
	return nil
}

var _ Copier = (*Service)(nil)
