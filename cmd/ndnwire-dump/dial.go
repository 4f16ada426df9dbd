package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ndnwire/ndnclient/sockettransport"
)

func init() {
	var network, local, remote string
	defineCommand(&cli.Command{
		Name:  "dial",
		Usage: "Dump TLV elements received over a socket.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "network",
				Usage:       "Socket `network`: tcp, udp, or unix.",
				Value:       "tcp",
				Destination: &network,
			},
			&cli.StringFlag{
				Name:        "local",
				Usage:       "Local `address`.",
				Destination: &local,
			},
			&cli.StringFlag{
				Name:        "remote",
				Usage:       "Remote `address`.",
				Required:    true,
				Destination: &remote,
			},
		},
		Action: func(c *cli.Context) error {
			tr, e := sockettransport.Dial(network, local, remote)
			if e != nil {
				return e
			}
			defer close(tr.Tx())

			for n := 0; ; n++ {
				select {
				case <-interrupt:
					return nil
				case wire, ok := <-tr.Rx():
					if !ok {
						return nil
					}
					fmt.Printf("--- element %d (%d bytes)\n", n, len(wire))
					if e := dumpElements(os.Stdout, wire, 0); e != nil {
						fmt.Fprintln(os.Stderr, e)
					}
				}
			}
		},
	})
}
