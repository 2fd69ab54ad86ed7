// Command octane is a simple chess engine exposing both a UCI and a console interface.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dalequinn/octane/pkg/engine"
	"github.com/dalequinn/octane/pkg/engine/console"
	"github.com/dalequinn/octane/pkg/engine/uci"
	"github.com/seekerror/logw"
)

var (
	debug = flag.Bool("debug", false, "Log every applied move (the engine's verbose mode)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: octane [options]

OCTANE is a simple chess engine speaking either UCI or a line-oriented console protocol.
The first line of input selects the protocol: "uci" or "console".
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New("octane", "octane contributors")
	e.Debug = *debug

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}

	switch scanner.Text() {
	case uci.ProtocolName:
		uci.NewDriver(e).Run(ctx, scanner, os.Stdout)
	case console.ProtocolName:
		console.NewDriver(e).Run(ctx, scanner, os.Stdout)
	default:
		flag.Usage()
		logw.Exitf(ctx, "protocol not supported")
	}
}
