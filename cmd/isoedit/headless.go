package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/isogrid/levels"
	"github.com/milk9111/isogrid/script"
	"github.com/milk9111/isogrid/stages"
)

// runHeadless builds a stage from a spec and script and writes the level
// to out without opening a window.
func runHeadless(opts editorOptions) error {
	if opts.ScriptPath == "" {
		return errors.New("headless mode needs -script")
	}
	spec, err := stages.LoadSpec(opts.StagePath)
	if err != nil {
		return err
	}
	stage, err := spec.NewStage()
	if err != nil {
		return err
	}
	if err := script.NewRunner(stage, opts.Seed).RunFile(opts.ScriptPath); err != nil {
		return err
	}

	out := opts.OutPath
	if out == "" {
		out = defaultLevelPath(stage.Config().Name)
	}
	lvl := levels.Capture(stage)
	if err := levels.Save(out, lvl); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	log.Printf("Wrote level %s (%s): %d cells, %d tiles", out, lvl.ID, len(lvl.Cells), len(lvl.Tiles))
	return nil
}
