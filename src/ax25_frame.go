package bulletin

/*------------------------------------------------------------------
 *
 * Name:	ax25_frame
 *
 * Purpose:	Assemble a complete AX.25 UI frame ready for transmission.
 *
 * Description:	APRS uses only UI frames.  The layout is:
 *
 *	* Destination Address	7 octets
 *	* Source Address	7 octets
 *	* 0-8 Digipeaters	7 octets each
 *	* Control		1 octet, 0x03 for UI frame
 *	* Protocol ID		1 octet, 0xf0 for no layer 3
 *	* Information		0 or more octets
 *	* FCS			2 octets, low byte first
 *
 *	The last address has the LSB of its 7th octet set.  That is the
 *	source when there are no digipeaters, otherwise the final
 *	digipeater.
 *
 *	There is no upper limit on the information part here.  That is
 *	left to whatever eventually puts the frame on the air.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strings"
)

const AX25_UI_FRAME = 0x03 /* Control field value. */

const AX25_PID_NO_LAYER_3 = 0xf0 /* protocol ID used for APRS */

const AX25_MIN_PACKET_LEN = 2*AX25_ADDR_LEN + 2 /* Destination, Source, Control, PID. */

const DEFAULT_DESTINATION = "APRS"
const DEFAULT_MESSAGE_WIDTH = 64
const DEFAULT_BULLETIN_WIDTH = 67

// FrameConfig is everything about the sending station that stays the same
// from frame to frame.  It is only ever read.
type FrameConfig struct {
	Source      StationAddress
	Destination StationAddress
	Relays      []StationAddress

	UseUTC        bool // Timestamp as HHMMSSz rather than local HHMMSS+HHMM.
	OmitTimestamp bool // Body is the text alone, without "timestamp - ".

	MessageWidth  int // Longest message body sent as a single frame.
	BulletinWidth int // Longest bulletin line.

	Overflow        OverflowPolicy // What to do with a word wider than the line.
	ContinueOnError bool           // Keep sending remaining lines after a transport error.
}

// DefaultFrameConfig returns the usual setup for bulletins and messages:
// destination APRS, no digipeaters, UTC timestamps.
func DefaultFrameConfig(source StationAddress) FrameConfig {
	return FrameConfig{
		Source:        source,
		Destination:   StationAddress{Callsign: DEFAULT_DESTINATION},
		UseUTC:        true,
		MessageWidth:  DEFAULT_MESSAGE_WIDTH,
		BulletinWidth: DEFAULT_BULLETIN_WIDTH,
		Overflow:      OverflowHardCut,
	}
}

// Validate checks every address and width without building anything.
func (cfg FrameConfig) Validate() error {
	if _, err := cfg.encodeAddresses(); err != nil {
		return err
	}

	if cfg.MessageWidth <= 0 {
		return fmt.Errorf("%w: message width %d must be positive", ErrInvalidConfig, cfg.MessageWidth)
	}

	if cfg.BulletinWidth <= 0 {
		return fmt.Errorf("%w: bulletin width %d must be positive", ErrInvalidConfig, cfg.BulletinWidth)
	}

	return nil
}

/*------------------------------------------------------------------------------
 *
 * Name:	encodeAddresses
 *
 * Purpose:	Encode destination, source, and digipeaters in frame order.
 *
 * Description:	The Last flags supplied by the caller are ignored.  The
 *		position in the list decides which one gets the address
 *		extension bit.  The caller's slice is never modified.
 *
 *------------------------------------------------------------------------------*/

func (cfg FrameConfig) encodeAddresses() ([]byte, error) {
	if len(cfg.Relays) > AX25_MAX_REPEATERS {
		return nil, &AddressError{Position: position_name(AX25_REPEATER_1 + len(cfg.Relays) - 1), Address: cfg.Relays[len(cfg.Relays)-1].String(),
			Reason: fmt.Sprintf("more than %d digipeaters", AX25_MAX_REPEATERS)}
	}

	var addrs = make([]StationAddress, 0, 2+len(cfg.Relays))

	var dest = cfg.Destination
	dest.Last = false
	addrs = append(addrs, dest)

	var src = cfg.Source
	src.Last = len(cfg.Relays) == 0
	addrs = append(addrs, src)

	for n, relay := range cfg.Relays {
		relay.Last = n == len(cfg.Relays)-1
		addrs = append(addrs, relay)
	}

	var out = make([]byte, 0, len(addrs)*AX25_ADDR_LEN)

	for n, addr := range addrs {
		var field, err = EncodeAddress(addr)
		if err != nil {
			if ae, ok := err.(*AddressError); ok { //nolint:errorlint
				ae.Position = position_name(n)
			}
			return nil, err
		}
		out = append(out, field[:]...)
	}

	return out, nil
}

/*------------------------------------------------------------------------------
 *
 * Name:	BuildFrame
 *
 * Purpose:	Put all the pieces together and append the FCS.
 *
 * Inputs:	cfg	- Station addresses.
 *
 *		control	- Control field.  AX25_UI_FRAME for APRS.
 *
 *		pid	- Protocol ID.  AX25_PID_NO_LAYER_3 for APRS.
 *
 *		info	- Information part, copied verbatim.
 *
 * Returns:	Complete frame including FCS.  On error nothing is
 *		returned; there is never a partial frame.
 *
 *------------------------------------------------------------------------------*/

func BuildFrame(cfg FrameConfig, control byte, pid byte, info []byte) ([]byte, error) {
	var addrs, err = cfg.encodeAddresses()
	if err != nil {
		return nil, err
	}

	var frame = make([]byte, 0, len(addrs)+2+len(info)+AX25_FCS_LEN)
	frame = append(frame, addrs...)
	frame = append(frame, control, pid)
	frame = append(frame, info...)

	return appendFCS(frame), nil
}

// BuildUIFrame is BuildFrame with the APRS control and protocol ID.
func BuildUIFrame(cfg FrameConfig, info []byte) ([]byte, error) {
	return BuildFrame(cfg, AX25_UI_FRAME, AX25_PID_NO_LAYER_3, info)
}

/*------------------------------------------------------------------
 *
 * Function:	FormatMonitor
 *
 * Purpose:	Format a frame in the "TNC-2" monitor format for display.
 *
 * Returns:	"Source>Destination[,repeater...]:info"
 *
 *------------------------------------------------------------------*/

func FormatMonitor(cfg FrameConfig, info []byte) string {
	var b strings.Builder

	b.WriteString(cfg.Source.String())
	b.WriteString(">")
	b.WriteString(cfg.Destination.String())

	for _, relay := range cfg.Relays {
		b.WriteString(",")
		b.WriteString(relay.String())
	}

	b.WriteString(":")
	b.Write(info)

	return b.String()
}
