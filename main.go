package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/lixenwraith/serpent/audio"
	"github.com/lixenwraith/serpent/config"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/input"
	"github.com/lixenwraith/serpent/render"
	"github.com/lixenwraith/serpent/terminal"
)

const configPath = "serpent.json"

func settingsFrom(cfg config.Config) engine.Settings {
	return engine.Settings{
		BoardWidth:  cfg.BoardWidth,
		BoardHeight: cfg.BoardHeight,
		TickDelay:   cfg.TickDelay(),
		SnakeStyle:  cfg.ParsedSnakeStyle(),
		AppleStyle:  cfg.ParsedAppleStyle(),
		Wrap:        cfg.Wrap,
		Color:       cfg.Color,
	}
}

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
		cfg = config.Default()
	}

	term := terminal.NewService()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	term.Start()

	sound := audio.NewEngine(!cfg.Sound)
	if err := sound.Init(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	state := engine.New()
	renderer := render.New(term.Screen())
	state.ApplySettings(settingsFrom(cfg), renderer)

	// Quit key path: restore the terminal and leave immediately. Stop is
	// re-entrant, so the death path below reusing it is safe.
	handler := input.NewHandler(state, renderer, func() {
		term.Stop()
		sound.Close()
		fmt.Println()
		os.Exit(0)
	})
	go handler.Run(term.Events())

	stopWatch := make(chan struct{})
	go func() {
		err := config.Watch(configPath, func(c config.Config) {
			sound.SetMuted(!c.Sound)
			state.ApplySettings(settingsFrom(c), renderer)
		}, stopWatch)
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		}
	}()

	stepper := engine.NewStepper(state, renderer,
		rand.New(rand.NewSource(time.Now().UnixNano())), sound)
	runErr := stepper.Run()

	close(stopWatch)
	term.Stop()
	sound.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "internal error: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Println("\nGame Over")
}
