package sockettransport_test

import (
	"testing"
	"time"

	"github.com/ndnwire/ndnclient/an"
	"github.com/ndnwire/ndnclient/core/testenv"
	"github.com/ndnwire/ndnclient/sockettransport"
	"github.com/ndnwire/ndnclient/tlv"
)

var makeAR = testenv.MakeAR

// checkTransport sends elements of assorted sizes in both directions and
// expects each to arrive whole and in order.
func checkTransport(t testing.TB, trA, trB sockettransport.Transport) {
	_, require := makeAR(t)

	makeWires := func() (wires [][]byte) {
		for _, size := range []int{0, 1, 120, 300, 5000} {
			payload := make([]byte, size)
			testenv.RandBytes(payload)
			var eb tlv.EncodingBuffer
			eb.PrependBlob(an.TtContent, payload)
			wire, e := eb.Output()
			require.NoError(e)
			wires = append(wires, wire)
		}
		return wires
	}

	checkOneWay := func(src, dst sockettransport.Transport) {
		wires := makeWires()
		go func() {
			for _, wire := range wires {
				src.Tx() <- wire
			}
		}()
		for i, want := range wires {
			select {
			case got := <-dst.Rx():
				require.Equal(want, got, "%d", i)
			case <-time.After(5 * time.Second):
				require.FailNowf("timeout", "element %d", i)
			}
		}
	}

	checkOneWay(trA, trB)
	checkOneWay(trB, trA)
}
