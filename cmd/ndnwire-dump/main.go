// Command ndnwire-dump prints TLV elements of a byte stream as a tree.
package main

import (
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ndnwire/ndnclient/mk/version"
)

var interrupt = make(chan os.Signal, 1)

var app = &cli.App{
	Version: version.Get().String(),
	Usage:   "Dump NDN TLV elements.",
	Before: func(c *cli.Context) error {
		signal.Notify(interrupt, syscall.SIGINT)
		return nil
	},
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	e := app.Run(os.Args)
	if e != nil {
		log.Fatal(e)
	}
}
