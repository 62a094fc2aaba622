package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/oasys/internal/ui/layout"
	"github.com/abhisek/oasys/internal/ui/theme"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer) with the
	// palette of the current display mode.
	View(width, height int, p theme.Palette) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that consume printable keys as
// text. The root model skips its global shortcuts while Capturing is true.
type InputCapturer interface {
	Capturing() bool
}
