package bulletin

/*------------------------------------------------------------------
 *
 * Name:	ax25_addr
 *
 * Purpose:	Encode a single AX.25 address field.
 *
 * Description:	Each address is 7 octets:
 *
 *	* 6 upper case letters or digits, blank padded.
 *		These are shifted left one bit, leaving the LSB always 0.
 *
 *	* a 7th octet containing the SSID and flags:
 *
 *		H R R SSID 0
 *
 *		H = command/response or has-been-repeated.  Always 0 here.
 *		R R = Reserved = 1 1
 *		SSID = substation ID, 0 - 15.
 *		0 = zero, or 1 for the last address of the address field.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const AX25_ADDR_LEN = 7      /* Octets per address field. */
const AX25_CALLSIGN_LEN = 6  /* Callsign portion, blank padded. */
const AX25_MAX_SSID = 15     /* SSID is 4 bits. */
const AX25_MAX_REPEATERS = 8 /* Limit when transmitting over the radio. */

const SSID_H_MASK = 0x80

const SSID_RR_MASK = 0x60

const SSID_SSID_MASK = 0x1e
const SSID_SSID_SHIFT = 1

const SSID_LAST_MASK = 0x01

// ErrInvalidAddress covers an empty or too long callsign, a callsign with
// unprintable characters, an SSID outside 0-15 and too many relays.
var ErrInvalidAddress = errors.New("invalid address")

// AddressError describes which address was rejected and why.
type AddressError struct {
	Position string // "Destination", "Source", "Digi1" ...
	Address  string
	Reason   string
}

func (e *AddressError) Error() string {
	if e.Position == "" {
		return fmt.Sprintf("invalid address %q: %s", e.Address, e.Reason)
	}

	return fmt.Sprintf("invalid %s address %q: %s", e.Position, e.Address, e.Reason)
}

func (e *AddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// StationAddress is one entry of the address field.
type StationAddress struct {
	Callsign string
	SSID     int
	Last     bool // Sets the address extension bit.
}

// String renders the address the way it is shown in monitor format, with
// the SSID omitted when it is zero.
func (a StationAddress) String() string {
	var call = strings.ToUpper(a.Callsign)
	if a.SSID == 0 {
		return call
	}

	return call + "-" + strconv.Itoa(a.SSID)
}

func (a StationAddress) validate() error {
	if len(a.Callsign) == 0 {
		return &AddressError{Address: a.Callsign, Reason: "callsign is empty"}
	}

	if len(a.Callsign) > AX25_CALLSIGN_LEN {
		return &AddressError{Address: a.Callsign, Reason: fmt.Sprintf("callsign has more than %d characters", AX25_CALLSIGN_LEN)}
	}

	for i := 0; i < len(a.Callsign); i++ {
		var c = a.Callsign[i]
		if c < 0x20 || c > 0x7e {
			return &AddressError{Address: a.Callsign, Reason: fmt.Sprintf("unprintable character 0x%02x in position %d", c, i)}
		}
	}

	if a.SSID < 0 || a.SSID > AX25_MAX_SSID {
		return &AddressError{Address: a.Callsign, Reason: fmt.Sprintf("SSID %d not in range of 0 to %d", a.SSID, AX25_MAX_SSID)}
	}

	return nil
}

/*------------------------------------------------------------------------------
 *
 * Name:	EncodeAddress
 *
 * Purpose:	Convert a station address into its 7 octet on-wire form.
 *
 * Inputs:	addr	- Callsign, SSID, and whether it terminates the
 *			  address field.
 *
 * Returns:	The 7 octets, or ErrInvalidAddress.  Nothing is ever
 *		truncated or wrapped to make a bad address fit.
 *
 *------------------------------------------------------------------------------*/

func EncodeAddress(addr StationAddress) ([AX25_ADDR_LEN]byte, error) {
	var out [AX25_ADDR_LEN]byte

	if err := addr.validate(); err != nil {
		return out, err
	}

	var call = strings.ToUpper(addr.Callsign)

	for i := 0; i < AX25_CALLSIGN_LEN; i++ {
		var c byte = ' '
		if i < len(call) {
			c = call[i]
		}
		out[i] = c << 1
	}

	out[6] = SSID_RR_MASK | byte(addr.SSID<<SSID_SSID_SHIFT)&SSID_SSID_MASK
	if addr.Last {
		out[6] |= SSID_LAST_MASK
	}

	return out, nil
}

/*------------------------------------------------------------------------------
 *
 * Name:	ParseStationAddress
 *
 * Purpose:	Parse the usual text form of an address, e.g. "WB2OSZ-15".
 *
 * Inputs:	text	- Callsign with optional dash and substation id.
 *			  Letters and digits only.  Lower case is accepted
 *			  and converted to upper case.
 *
 * Returns:	Address with Last false.
 *
 *------------------------------------------------------------------------------*/

func ParseStationAddress(text string) (StationAddress, error) {
	var addr StationAddress

	var call, ssidText, hasSSID = strings.Cut(strings.TrimSpace(text), "-")

	for i, r := range call {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) || r > unicode.MaxASCII {
			return addr, &AddressError{Address: text, Reason: fmt.Sprintf("character other than letter or digit in position %d", i)}
		}
	}

	addr.Callsign = strings.ToUpper(call)

	if hasSSID {
		if len(ssidText) == 0 || len(ssidText) > 2 {
			return addr, &AddressError{Address: text, Reason: "SSID must be 1 or 2 digits"}
		}

		var ssid, err = strconv.Atoi(ssidText)
		if err != nil {
			return addr, &AddressError{Address: text, Reason: "SSID must be digits"}
		}
		addr.SSID = ssid
	}

	if err := addr.validate(); err != nil {
		return addr, err
	}

	return addr, nil
}

// ParsePath parses a comma separated digipeater list such as
// "WIDE1-1,WIDE2-1".  An empty string is an empty path.
func ParsePath(text string) ([]StationAddress, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	var parts = strings.Split(text, ",")
	if len(parts) > AX25_MAX_REPEATERS {
		return nil, &AddressError{Address: text, Reason: fmt.Sprintf("more than %d digipeaters", AX25_MAX_REPEATERS)}
	}

	var path = make([]StationAddress, 0, len(parts))
	for n, part := range parts {
		var addr, err = ParseStationAddress(part)
		if err != nil {
			var ae *AddressError
			if errors.As(err, &ae) {
				ae.Position = position_name(AX25_REPEATER_1 + n)
			}
			return nil, err
		}
		path = append(path, addr)
	}

	return path, nil
}

const AX25_DESTINATION = 0 /* Address positions in frame. */
const AX25_SOURCE = 1
const AX25_REPEATER_1 = 2

func position_name(n int) string {
	switch {
	case n == AX25_DESTINATION:
		return "Destination"
	case n == AX25_SOURCE:
		return "Source"
	default:
		return "Digi" + strconv.Itoa(n-AX25_REPEATER_1+1)
	}
}
