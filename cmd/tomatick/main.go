// Command tomatick is a terminal pomodoro timer with procedural
// square-wave chiptune audio.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tomatick/app"
	"github.com/lixenwraith/tomatick/audio"
	"github.com/lixenwraith/tomatick/config"
	"github.com/lixenwraith/tomatick/session"
)

func main() {
	intervals := flag.String("intervals", "", "work or work,break interval minutes (e.g. 25,5)")
	mute := flag.Bool("mute", false, "start with sound disabled")
	flag.Parse()

	settings := loadSettings()

	audioCfg := audio.LoadConfig()
	audioCfg.MasterVolume = settings.MasterVolume
	if *mute {
		audioCfg.Enabled = false
	}

	if *intervals != "" {
		work, brk, err := session.ParseIntervals(*intervals)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid intervals %q: %v\n", *intervals, err)
			os.Exit(1)
		}
		settings.WorkDuration = work
		settings.BreakDuration = brk
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before any panic reaches the user
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	engine := audio.NewEngine(audioCfg)
	if err := engine.Start(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Audio engine failed: %v\n", err)
		os.Exit(1)
	}

	a := app.New(screen, engine, settings)
	a.Run()

	engine.Close()
	screen.Fini()
}

// loadSettings reads the user config file, falling back to defaults on
// any problem
func loadSettings() config.Settings {
	path, err := config.DefaultPath()
	if err != nil {
		log.Printf("Config path unavailable: %v", err)
		return config.DefaultSettings()
	}

	settings, err := config.Load(path)
	if err != nil {
		log.Printf("Settings load failed, using defaults: %v", err)
	}
	return settings
}
