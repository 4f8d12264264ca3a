package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/civiltime/civil2k"
)

func main() {
	layout := flag.String("format", "", "Optional strftime-style layout to render each datetime with")

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, arg := range args {
		d, err := civil2k.Parse(arg)
		if err != nil {
			log.Error().Err(err).Str("input", arg).Msg("could not parse datetime")
			failed = true
			continue
		}

		fmt.Printf("%s\n", d)
		fmt.Printf("  stamp:    %d\n", d.Stamp())
		fmt.Printf("  unix:     %d\n", d.Unix())
		fmt.Printf("  rfc3339:  %s\n", d.RFC3339())
		fmt.Printf("  rfc2822:  %s\n", d.RFC2822())
		if *layout != "" {
			fmt.Printf("  custom:   %s\n", d.Format(*layout))
		}
	}

	if failed {
		os.Exit(1)
	}
}
