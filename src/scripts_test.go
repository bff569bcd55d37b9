package bulletin

import (
	"os"

	"github.com/spf13/pflag"
)

// pflag (not unreasonably) assumes it only ever gets called once. Running
// the command line entry point repeatedly in Go tests means resetting it
// in between.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}
