// Command turbocow is the distributed CPU raytracer's CLI: render,
// distributed {init,status,reset,worker,display}, pack, ui,
// connectivity_test {server,client}, streaming_render (§6 EXTERNAL
// INTERFACES). Grounded on the teacher's single flat main() in
// cmd/vi-fighter/main.go, restructured into one flag.FlagSet per
// subcommand since this binary, unlike the teacher's, has several
// independent entry points rather than one game loop.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/turbocow/internal/logging"
)

func main() {
	logFile := logging.Setup()
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "turbocow:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return runRender(args)
	}

	switch args[0] {
	case "render":
		return runRender(args[1:])
	case "distributed":
		return runDistributed(args[1:])
	case "pack":
		return runPack(args[1:])
	case "ui":
		return runUI(args[1:])
	case "connectivity_test":
		return runConnectivityTest(args[1:])
	case "streaming_render":
		return runStreamingRenderCmd(args[1:])
	default:
		// No recognized subcommand name: treat the whole argument list as
		// render flags, matching "render (default when no subcommand
		// given)" (§6).
		return runRender(args)
	}
}
