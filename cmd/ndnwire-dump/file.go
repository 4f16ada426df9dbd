package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/ndnwire/ndnclient/tlv"
)

func init() {
	var input string
	defineCommand(&cli.Command{
		Name:  "file",
		Usage: "Dump TLV elements from a file or standard input.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Usage:       "Input `file`, or - for standard input.",
				Value:       "-",
				Destination: &input,
			},
		},
		Action: func(c *cli.Context) error {
			r := io.Reader(os.Stdin)
			if input != "-" {
				f, e := os.Open(input)
				if e != nil {
					return e
				}
				defer f.Close()
				r = f
			}

			stream, e := io.ReadAll(r)
			if e != nil {
				return e
			}

			// frame the stream, then dump each element; keep going past a
			// bad element so one corrupt packet does not hide the rest
			var errs []error
			var sd tlv.StructureDecoder
			for n := 0; len(stream) > 0; n++ {
				found, e := sd.FindElementEnd(stream)
				if e != nil {
					errs = append(errs, fmt.Errorf("element %d: %w", n, e))
					break
				}
				if !found {
					errs = append(errs, fmt.Errorf("element %d: %w", n, tlv.ErrIncomplete))
					break
				}

				end := sd.Offset()
				fmt.Printf("--- element %d (%d bytes)\n", n, end)
				if e := dumpElements(os.Stdout, stream[:end], 0); e != nil {
					errs = append(errs, fmt.Errorf("element %d: %w", n, e))
				}
				stream = stream[end:]
				sd.Reset()
			}
			return multierr.Combine(errs...)
		},
	})
}
