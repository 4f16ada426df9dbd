package sockettransport

import (
	"fmt"
	"net"

	"github.com/gogf/greuse"

	"github.com/ndnwire/ndnclient/tlv"
)

type datagramImpl struct {
	nopRedialer
}

// RxLoop receives one element per datagram.
// A datagram that does not contain a complete element is dropped; trailing
// bytes after the first element are ignored.
func (datagramImpl) RxLoop(tr *transport) error {
	buffer := make([]byte, tr.cfg.RxBufferLength)
	for {
		nRead, e := tr.Conn().Read(buffer)
		if e != nil {
			return e
		}

		var sd tlv.StructureDecoder
		found, e := sd.FindElementEnd(buffer[:nRead])
		if e != nil || !found {
			tr.cnt.NRxInvalid++
			continue
		}

		wire := make([]byte, sd.Offset())
		copy(wire, buffer)
		tr.rx <- wire
	}
}

type pipeImpl struct {
	datagramImpl
}

func (pipeImpl) Dial(network, local, remote string) (net.Conn, error) {
	return nil, fmt.Errorf("cannot dial %s", network)
}

type udpImpl struct {
	datagramImpl
}

func (udpImpl) Dial(network, local, remote string) (net.Conn, error) {
	return greuse.Dial(network, local, remote)
}

func init() {
	implByNetwork["pipe"] = pipeImpl{}

	implByNetwork["udp"] = udpImpl{}
	implByNetwork["udp4"] = udpImpl{}
	implByNetwork["udp6"] = udpImpl{}
}
