package bulletin

/*------------------------------------------------------------------
 *
 * Purpose:	Shape APRS messages and bulletins into UI frames and hand
 *		them to a transport.
 *
 * Description:	Message information part:
 *
 *			:GROUP    :body
 *
 *		Addressee is upper case, padded or truncated to 9 characters.
 *
 *		Bulletin information part:
 *
 *			:BLNnGROUP:body
 *
 *		n is the line number, a single digit 0-9, and the group
 *		is padded or truncated to 5 characters.  That keeps the
 *		addressee at exactly 9 characters.
 *
 *		The body is "timestamp - text".  If it is too long for one
 *		line it is word wrapped and each piece gets the same header.
 *		The timestamp appears only at the start of the first piece.
 *
 *		All frames are built before anything is transmitted so a
 *		bad address can never leave a bulletin half sent.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const MESSAGE_ADDRESSEE_LEN = 9
const BULLETIN_GROUP_LEN = 5
const MAX_BULLETIN_LINE = 9

// Transport delivers one finished frame.  Nothing is read back.
type Transport interface {
	Send(frame []byte) error
}

// TransportError wraps whatever the Transport returned, with the line
// (counting from 0 within this send) that failed.
type TransportError struct {
	Line int
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transmit line %d: %v", e.Line, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Frame is one finished frame along with the information part it carries,
// kept for display.
type Frame struct {
	Info  string
	Bytes []byte
}

type Sender struct {
	Config    FrameConfig
	Transport Transport
	Clock     Clock       // SystemClock if nil.
	Logger    *log.Logger // log.Default() if nil.
}

func NewSender(cfg FrameConfig, transport Transport, logger *log.Logger) *Sender {
	return &Sender{
		Config:    cfg,
		Transport: transport,
		Clock:     SystemClock{},
		Logger:    logger,
	}
}

func (s *Sender) clock() Clock {
	if s.Clock == nil {
		return SystemClock{}
	}

	return s.Clock
}

func (s *Sender) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}

	return s.Logger
}

// body never contains line breaks; any run of white space becomes one space.
func (s *Sender) body(text string) string {
	text = strings.Join(strings.Fields(text), " ")

	if s.Config.OmitTimestamp {
		return text
	}

	return BuildTimestamp(s.Config, s.clock()) + " - " + text
}

// shape splits body into lines no longer than width.  A body that already
// fits is kept exactly as is.
func (s *Sender) shape(body string, width int) ([]string, error) {
	if len(body) <= width {
		return []string{body}, nil
	}

	return WrapText(body, width, s.Config.Overflow)
}

func (s *Sender) buildAll(infos []string) ([]Frame, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	var frames = make([]Frame, 0, len(infos))

	for _, info := range infos {
		var b, err = BuildUIFrame(s.Config, []byte(info))
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{Info: info, Bytes: b})
	}

	return frames, nil
}

// MessageFrames builds, without sending, the frames SendMessage would send.
func (s *Sender) MessageFrames(group string, text string) ([]Frame, error) {
	var header = ":" + padGroup(strings.ToUpper(group), MESSAGE_ADDRESSEE_LEN) + ":"

	var lines, err = s.shape(s.body(text), s.Config.MessageWidth)
	if err != nil {
		return nil, err
	}

	var infos = make([]string, 0, len(lines))
	for _, line := range lines {
		infos = append(infos, header+line)
	}

	return s.buildAll(infos)
}

// BulletinFrames builds, without sending, the frames SendBulletin would send.
func (s *Sender) BulletinFrames(group string, text string, startLine int) ([]Frame, error) {
	if startLine < 0 {
		return nil, fmt.Errorf("%w: bulletin line number %d is negative", ErrInvalidConfig, startLine)
	}

	var lines, err = s.shape(s.body(text), s.Config.BulletinWidth)
	if err != nil {
		return nil, err
	}

	if last := startLine + len(lines) - 1; last > MAX_BULLETIN_LINE {
		return nil, fmt.Errorf("%w: bulletin lines %d to %d, line numbers stop at %d", ErrInvalidConfig, startLine, last, MAX_BULLETIN_LINE)
	}

	var infos = make([]string, 0, len(lines))
	for n, line := range lines {
		infos = append(infos, ":BLN"+strconv.Itoa(startLine+n)+padGroup(group, BULLETIN_GROUP_LEN)+":"+line)
	}

	return s.buildAll(infos)
}

func (s *Sender) SendMessage(group string, text string) error {
	var frames, err = s.MessageFrames(group, text)
	if err != nil {
		return err
	}

	return s.transmit(frames)
}

func (s *Sender) SendBulletin(group string, text string, startLine int) error {
	var frames, err = s.BulletinFrames(group, text, startLine)
	if err != nil {
		return err
	}

	return s.transmit(frames)
}

/*------------------------------------------------------------------
 *
 * Name:	transmit
 *
 * Purpose:	Hand frames to the transport, in order.
 *
 * Description:	Stops at the first failure unless ContinueOnError is
 *		set, in which case every frame is attempted.  Either way
 *		the first failure is what gets returned.
 *
 *------------------------------------------------------------------*/

func (s *Sender) transmit(frames []Frame) error {
	if s.Transport == nil {
		return errors.New("no transport configured")
	}

	var logger = s.logger()
	var first error

	for n, f := range frames {
		logger.Info("Transmit", "frame", FormatMonitor(s.Config, []byte(f.Info)))

		if err := s.Transport.Send(f.Bytes); err != nil {
			logger.Error("Transmit failed", "line", n, "err", err)

			if first == nil {
				first = &TransportError{Line: n, Err: err}
			}

			if !s.Config.ContinueOnError {
				return first
			}
		}
	}

	return first
}
