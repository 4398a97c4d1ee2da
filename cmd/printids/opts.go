package main

import (
	"github.com/jessevdk/go-flags"
)

type Opts struct {
	Verbose bool `long:"verbose" short:"v" description:"debug logging to stderr"`
	// Params collects anything else on the command line, including
	// unknown options such as --help.  They are logged and ignored.
	Params []string
}

func GetOpts(args []string) (Opts, error) {
	opts := Opts{}
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	params, err := parser.ParseArgs(args)
	if err != nil {
		return Opts{}, err
	}
	opts.Params = params
	return opts, nil
}
