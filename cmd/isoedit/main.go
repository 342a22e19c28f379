package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isogrid/stages"
)

func main() {
	stagePath := flag.String("stage", stages.DefaultSpec, "Stage spec to load (disk path, stages/<name>, or embedded)")
	levelPath := flag.String("level", "", "Saved level to open; also the default save path")
	scriptPath := flag.String("script", "", "Tengo build script to run on a fresh stage")
	outPath := flag.String("out", "", "Where to save the level (.json, or .zst for zstd)")
	assetsDir := flag.String("assets", "assets", "Directory containing tile sprites")
	headless := flag.Bool("headless", false, "Run -script and write -out without opening a window")
	watch := flag.Bool("watch", false, "Reload when stage specs or scripts change on disk")
	seed := flag.Int64("seed", 1, "Seed for the script noise builtin")
	verbose := flag.Bool("v", false, "Log every stage change")
	flag.Parse()

	opts := editorOptions{
		StagePath:  *stagePath,
		LevelPath:  *levelPath,
		ScriptPath: *scriptPath,
		OutPath:    *outPath,
		AssetsDir:  *assetsDir,
		Seed:       *seed,
		Verbose:    *verbose,
	}

	if *headless {
		if err := runHeadless(opts); err != nil {
			log.Fatalf("Headless build failed: %v", err)
		}
		return
	}

	log.Println("Editor starting...")
	editor, err := newEditor(opts)
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}
	if *watch {
		if err := editor.watch(); err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer editor.watcher.Close()
		}
	}

	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowTitle("isoedit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(editor); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
