package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/turbocow/scene"
)

// runPack re-serializes a scene description, reporting the input and
// output blob sizes (supplemented feature, grounded on
// original_source/turbocow/src/scenes/pack.rs, which only logs "done
// packing scene" — the byte-size report is the added diagnostic).
func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	source := fs.String("source", "", "path to the scene to read")
	target := fs.String("target", "", "path to write the re-serialized scene")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *source == "" || *target == "" {
		return fmt.Errorf("pack: --source and --target are both required")
	}

	input, err := os.ReadFile(*source)
	if err != nil {
		return err
	}

	desc, err := scene.DecodeDescription(input)
	if err != nil {
		return err
	}

	output, err := scene.EncodeDescription(desc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*target, output, 0644); err != nil {
		return err
	}

	fmt.Printf("packed %s (%d bytes) -> %s (%d bytes)\n", *source, len(input), *target, len(output))
	return nil
}
