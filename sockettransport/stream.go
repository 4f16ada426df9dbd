package sockettransport

import (
	"fmt"

	"github.com/ndnwire/ndnclient/tlv"
)

type streamImpl struct{}

// RxLoop carves elements out of the byte stream.
// Arriving fragments accumulate in one buffer; the structure decoder resumes
// across fragments, so no byte is examined twice while waiting for the rest
// of an element.
func (streamImpl) RxLoop(tr *transport) error {
	buffer := make([]byte, tr.cfg.RxBufferLength)
	nAvail := 0
	var sd tlv.StructureDecoder
	for {
		nRead, e := tr.Conn().Read(buffer[nAvail:])
		if e != nil {
			return e
		}
		nAvail += nRead

		for {
			found, e := sd.FindElementEnd(buffer[:nAvail])
			if e != nil {
				// the stream has lost element alignment and cannot recover
				return fmt.Errorf("unparseable stream: %w", e)
			}
			if !found {
				break
			}

			end := sd.Offset()
			wire := make([]byte, end)
			copy(wire, buffer[:end])
			tr.rx <- wire

			// retain bytes past the element as the start of the next one
			nAvail = copy(buffer, buffer[end:nAvail])
			sd.Reset()
		}

		if nAvail == len(buffer) {
			return fmt.Errorf("element exceeds buffer length %d", len(buffer))
		}
	}
}

type tcpImpl struct {
	streamImpl
	noLocalAddrDialer
	localAddrRedialer
}

type unixImpl struct {
	streamImpl
	noLocalAddrDialer
	noLocalAddrRedialer
}

func init() {
	var tcp tcpImpl
	implByNetwork["tcp"] = tcp
	implByNetwork["tcp4"] = tcp
	implByNetwork["tcp6"] = tcp
	implByNetwork["unix"] = unixImpl{}
}
