package bulletin

/*------------------------------------------------------------------
 *
 * Purpose:   	Send APRS messages or bulletins as AX.25 UI frames over
 *		UDP to a TNC.
 *
 * Usage:	ax25bln  [ options ]  [ text ... ]
 *
 *		With text on the command line, that is sent.  Otherwise
 *		each non-empty line of stdin is sent in turn.  Bulletin
 *		line numbers carry on from one input line to the next.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

func BulletinMain() {
	if status := bulletinRun(os.Stdin, os.Stdout, os.Stderr); status != 0 {
		os.Exit(status)
	}
}

func bulletinRun(stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var configFileName = pflag.StringP("config-file", "c", "", "YAML configuration file.")
	var mycall = pflag.StringP("mycall", "s", "", "Source callsign with optional SSID, e.g. N0CALL-7.")
	var destination = pflag.StringP("destination", "d", "", "Destination address.  Default APRS.")
	var via = pflag.StringP("via", "v", "", "Digipeater path, e.g. WIDE1-1,WIDE2-1.")
	var hostname = pflag.StringP("hostname", "h", "", "Hostname or address of UDP TNC.  Default localhost.")
	var port = pflag.IntP("port", "p", 0, "UDP port of TNC.  Default 8001.")
	var local = pflag.BoolP("local-time", "L", false, "Timestamp in local time with UTC offset rather than UTC.")
	var omitTimestamp = pflag.BoolP("no-timestamp", "N", false, "Send text without a timestamp prefix.")
	var bulletin = pflag.BoolP("bulletin", "b", false, "Send a bulletin (:BLNn) rather than a message.")
	var group = pflag.StringP("group", "g", "", "Message addressee or bulletin group.")
	var startLine = pflag.IntP("line", "l", 0, "First bulletin line number.")
	var overflow = pflag.StringP("overflow", "o", "", "Word too long for a line: hardcut, emit or fail.")
	var continueOnError = pflag.Bool("continue-on-error", false, "Keep sending remaining lines after a transmit error.")
	var dryRun = pflag.BoolP("dry-run", "n", false, "Print frames instead of sending them.")
	var hex = pflag.BoolP("hex", "x", false, "Hex dump each frame.")
	var textColor = pflag.IntP("text-color", "t", 0, "Text colors.  0=disabled. 1=default.")
	var debug = pflag.Bool("debug", false, "Debug logging.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(stderr, "%s - Send APRS messages and bulletins to a UDP TNC.\n", os.Args[0])
		fmt.Fprintf(stderr, "\n")
		fmt.Fprintf(stderr, "Usage: ax25bln [options] [text ...]\n")
		fmt.Fprintf(stderr, "\n")
		pflag.PrintDefaults()
		fmt.Fprintf(stderr, "\n")
		fmt.Fprintf(stderr, "Without text arguments, each line of stdin is sent.\n")
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		return 0
	}

	var logger = NewLogger(stderr, *debug, *textColor)

	var c = DefaultConfig()
	if *configFileName != "" {
		var loaded, err = LoadConfig(*configFileName)
		if err != nil {
			logger.Error("Configuration", "err", err)
			return 1
		}
		c = loaded
	}

	/*
	 * Command line overrides configuration file.
	 */
	if pflag.CommandLine.Changed("mycall") {
		c.MyCall = *mycall
	}
	if pflag.CommandLine.Changed("destination") {
		c.Destination = *destination
	}
	if pflag.CommandLine.Changed("via") {
		c.Path = *via
	}
	if pflag.CommandLine.Changed("hostname") {
		c.TNC.Host = *hostname
	}
	if pflag.CommandLine.Changed("port") {
		c.TNC.Port = *port
	}
	if *local {
		var utc = false
		c.UTC = &utc
	}
	if *omitTimestamp {
		c.OmitTimestamp = true
	}
	if pflag.CommandLine.Changed("overflow") {
		c.Overflow = *overflow
	}
	if *continueOnError {
		c.ContinueOnError = true
	}

	var fc, fcErr = c.FrameConfig()
	if fcErr != nil {
		logger.Error("Configuration", "err", fcErr)
		return 1
	}

	if *group == "" {
		logger.Error("A group (-g) is required.")
		pflag.Usage()
		return 1
	}

	var sender = NewSender(fc, nil, logger)

	if !*dryRun {
		var udp, err = DialUDP(c.TNC.Host, c.TNC.Port)
		if err != nil {
			logger.Error("TNC", "err", err)
			return 1
		}
		defer udp.Close()

		logger.Debug("Sending", "to", udp.String())

		sender.Transport = udp
	}

	var texts []string
	if len(pflag.Args()) > 0 {
		texts = []string{strings.Join(pflag.Args(), " ")}
	} else {
		var scanner = bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				texts = append(texts, line)
			}
		}
	}

	/*
	 * Everything is built first.  Any input that cannot be encoded stops
	 * us before the first frame goes out, so a bulletin is never left
	 * half sent.
	 */
	var line = *startLine
	var frames []Frame

	for _, text := range texts {
		var more []Frame
		var err error

		if *bulletin {
			more, err = sender.BulletinFrames(*group, text, line)
			line += len(more)
		} else {
			more, err = sender.MessageFrames(*group, text)
		}

		if err != nil {
			logger.Error("Encode", "text", text, "err", err)
			return 1
		}

		frames = append(frames, more...)
	}

	if *dryRun || *hex {
		for _, f := range frames {
			fmt.Fprintf(stdout, "%s\n", FormatMonitor(fc, []byte(f.Info)))
			if *hex {
				hex_dump(stdout, f.Bytes)
			}
		}
	}

	var status = 0

	if !*dryRun {
		if err := sender.transmit(frames); err != nil {
			logger.Error("Send", "err", err)
			status = 1
		}
	}

	return status
}
