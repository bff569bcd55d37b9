package bulletin

/*------------------------------------------------------------------
 *
 * Purpose:	Read station settings from a YAML file.
 *
 * Description:	Example:
 *
 *		mycall: N0CALL-7
 *		destination: APRS
 *		path: WIDE1-1,WIDE2-1
 *		tnc:
 *		  host: localhost
 *		  port: 8001
 *		utc: true
 *		message_width: 64
 *		bulletin_width: 67
 *		overflow: hardcut
 *		continue_on_error: false
 *
 *		Everything except mycall has a default.  Command line
 *		options override whatever is in the file.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type TNCConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type Config struct {
	MyCall          string    `yaml:"mycall"`
	Destination     string    `yaml:"destination"`
	Path            string    `yaml:"path"`
	TNC             TNCConfig `yaml:"tnc"`
	UTC             *bool     `yaml:"utc"`
	OmitTimestamp   bool      `yaml:"omit_timestamp"`
	MessageWidth    int       `yaml:"message_width"`
	BulletinWidth   int       `yaml:"bulletin_width"`
	Overflow        string    `yaml:"overflow"`
	ContinueOnError bool      `yaml:"continue_on_error"`
}

func DefaultConfig() *Config {
	var utc = true

	return &Config{ //nolint:exhaustruct
		Destination:   DEFAULT_DESTINATION,
		TNC:           TNCConfig{Host: DEFAULT_TNC_HOST, Port: DEFAULT_TNC_PORT},
		UTC:           &utc,
		MessageWidth:  DEFAULT_MESSAGE_WIDTH,
		BulletinWidth: DEFAULT_BULLETIN_WIDTH,
		Overflow:      OverflowHardCut.String(),
	}
}

// LoadConfig reads path over the defaults.  Keys missing from the file
// keep their default value.
func LoadConfig(path string) (*Config, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file %s: %w", path, err)
	}

	var c = DefaultConfig()

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return c, nil
}

/*------------------------------------------------------------------
 *
 * Name:	FrameConfig
 *
 * Purpose:	Convert to the form used for building frames, checking
 *		everything on the way.
 *
 *------------------------------------------------------------------*/

func (c *Config) FrameConfig() (FrameConfig, error) {
	var fc FrameConfig

	if c.MyCall == "" {
		return fc, fmt.Errorf("%w: mycall is required", ErrInvalidConfig)
	}

	var source, err = ParseStationAddress(c.MyCall)
	if err != nil {
		return fc, err
	}

	fc = DefaultFrameConfig(source)

	if c.Destination != "" {
		fc.Destination, err = ParseStationAddress(c.Destination)
		if err != nil {
			return fc, err
		}
	}

	fc.Relays, err = ParsePath(c.Path)
	if err != nil {
		return fc, err
	}

	if c.UTC != nil {
		fc.UseUTC = *c.UTC
	}
	fc.OmitTimestamp = c.OmitTimestamp

	if c.MessageWidth != 0 {
		fc.MessageWidth = c.MessageWidth
	}
	if c.BulletinWidth != 0 {
		fc.BulletinWidth = c.BulletinWidth
	}

	if c.Overflow != "" {
		fc.Overflow, err = ParseOverflowPolicy(c.Overflow)
		if err != nil {
			return fc, err
		}
	}

	fc.ContinueOnError = c.ContinueOnError

	return fc, fc.Validate()
}
