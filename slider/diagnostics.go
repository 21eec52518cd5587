package slider

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/rangeslider/track"
)

func reporter(l *log.Logger, id string) func(error) {
	if l == nil {
		l = log.Default()
	}
	l = l.With("slider", id)
	return func(err error) {
		if errors.Is(err, track.ErrInvariant) {
			l.Error("invariant violated; event ignored", "err", err)
			return
		}
		l.Warn("slider diagnostic", "err", err)
	}
}
