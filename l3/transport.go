// Package l3 defines the network layer abstractions of the client library.
package l3

// Transport is a communication channel that carries TLV elements.
type Transport interface {
	// Rx returns a channel of incoming TLV elements.
	// Each item is the wire encoding of exactly one element.
	// This function always returns the same channel.
	// This channel is closed when the transport is closed.
	Rx() <-chan []byte

	// Tx returns a channel of outgoing TLV elements.
	// Each item must be the wire encoding of exactly one element.
	// This function always returns the same channel.
	// Closing this channel causes the transport to close.
	Tx() chan<- []byte
}

// TransportQueueConfig defaults.
const (
	DefaultTransportRxQueueSize = 64
	DefaultTransportTxQueueSize = 64
)

// TransportQueueConfig contains Transport queue configuration.
type TransportQueueConfig struct {
	// RxQueueSize is the Go channel buffer size of the RX channel.
	// The default is DefaultTransportRxQueueSize.
	RxQueueSize int `json:"rxQueueSize,omitempty"`

	// TxQueueSize is the Go channel buffer size of the TX channel.
	// The default is DefaultTransportTxQueueSize.
	TxQueueSize int `json:"txQueueSize,omitempty"`
}

// ApplyTransportQueueConfigDefaults sets empty values to defaults.
func (cfg *TransportQueueConfig) ApplyTransportQueueConfigDefaults() {
	if cfg.RxQueueSize <= 0 {
		cfg.RxQueueSize = DefaultTransportRxQueueSize
	}
	if cfg.TxQueueSize <= 0 {
		cfg.TxQueueSize = DefaultTransportTxQueueSize
	}
}
