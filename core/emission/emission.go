// Package emission provides a simple event emitter.
package emission

import (
	"io"

	tul_emission "github.com/tul/emission"
)

// Emitter is a simple event emitter.
type Emitter struct {
	*tul_emission.Emitter
}

// NewEmitter creates a simple event emitter.
func NewEmitter() (emitter *Emitter) {
	emitter = new(Emitter)
	emitter.Emitter = tul_emission.NewEmitter()
	return emitter
}

// On registers a callback when an event occurs.
// Returns an io.Closer that cancels the callback registration.
func (emitter *Emitter) On(event, listener any) io.Closer {
	emitter.Emitter.On(event, listener)
	return canceler{emitter.Emitter, event, listener}
}

type canceler struct {
	emitter  *tul_emission.Emitter
	event    any
	listener any
}

func (c canceler) Close() error {
	c.emitter.Off(c.event, c.listener)
	return nil
}
