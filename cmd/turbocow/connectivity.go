package main

import (
	"errors"

	"github.com/lixenwraith/turbocow/sidechannel"
)

func runConnectivityTest(args []string) error {
	if len(args) == 0 {
		return errors.New("connectivity_test: expected a mode (\"server\" or \"client\")")
	}
	return sidechannel.RunSelfTest(args[0])
}
