package bulletin

/*-------------------------------------------------------------
 *
 * Purpose:	AX.25 Frame Check Sequence.
 *
 *		CRC-16/X.25: polynomial 0x1021 reflected, initial value
 *		0xffff, final xor 0xffff.  The check value for the
 *		ASCII string "123456789" is 0x906e.
 *
 *		The FCS goes over the air least significant byte first
 *		so the two bytes appended to a frame are the CRC with its
 *		bytes swapped relative to the usual big endian rendering.
 *
 *--------------------------------------------------------------*/

import (
	"github.com/sigurn/crc16"
)

const AX25_FCS_LEN = 2

var fcsTable = crc16.MakeTable(crc16.CRC16_X_25)

func fcs_calc(data []byte) uint16 {
	return crc16.Checksum(data, fcsTable)
}

// appendFCS computes the FCS over everything in frame and appends it in
// transmission order.
func appendFCS(frame []byte) []byte {
	var fcs = fcs_calc(frame)

	return append(frame, byte(fcs&0xff), byte(fcs>>8))
}
