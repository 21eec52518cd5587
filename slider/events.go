package slider

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/iw2rmb/rangeslider/track"
)

// Event is the read-only payload passed to hooks.
//
// Input is the bound host input; hooks may read it but must not drive the
// slider that is dispatching.
type Event struct {
	Input *textinput.Model
	ID    string
	Min   int
	Max   int
	Value int
}

func buildEvent(input *textinput.Model, s track.Snapshot) Event {
	return Event{
		Input: input,
		ID:    s.Name,
		Min:   s.Min,
		Max:   s.Max,
		Value: s.Value,
	}
}
