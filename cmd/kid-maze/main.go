package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/kid-maze/audio"
	"github.com/lixenwraith/kid-maze/config"
	"github.com/lixenwraith/kid-maze/game"
	"github.com/lixenwraith/kid-maze/maze"
	"github.com/lixenwraith/kid-maze/render"
)

// Redraw cadence for the running clock
const clockRefreshInterval = 250 * time.Millisecond

var (
	configFlag = flag.String("config", "kid-maze.toml", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to the log directory")
	sizeFlag   = flag.Int("size", 0, "Maze side length, odd and at least 5 (overrides config)")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 for time based (overrides config)")
	noFogFlag  = flag.Bool("nofog", false, "Start with fog of war disabled")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mKID-MAZE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	// Until the log destination is known
	log.SetOutput(io.Discard)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		if err := dumpConfig(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Config dump failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}
	sessionID := uuid.New()
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID.String()[:8]))
	log.Printf("[APP] session %s starting, size=%d seed=%d", sessionID, cfg.Maze.Size, cfg.Maze.Seed)

	var sounds game.Sounds
	if cfg.Audio.Enabled {
		audioCfg := audio.DefaultConfig()
		audioCfg.MasterVolume = cfg.Audio.Volume
		sm := audio.NewSoundManager(audioCfg)
		if err := sm.Initialize(); err != nil {
			log.Printf("[AUDIO] initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	session, err := game.NewSession(maze.New(cfg.GeneratorConfig()), game.Options{
		Size:   cfg.Maze.Size,
		Fog:    cfg.GameFog(),
		Sounds: sounds,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build maze: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.SetStyle(render.StyleDefault)
	screen.HideCursor()

	run(screen, session)
	log.Printf("[APP] session %s finished", sessionID)
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}

	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *sizeFlag != 0 {
		cfg.Maze.Size = *sizeFlag
	}
	if *seedFlag != 0 {
		cfg.Maze.Seed = *seedFlag
	}
	if *noFogFlag {
		cfg.Fog.Enabled = false
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

// dumpConfig writes cfg as TOML
func dumpConfig(w io.Writer, cfg config.Config) error {
	data, err := config.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// run is the event loop; returns when the player quits or the terminal closes
func run(screen tcell.Screen, session *game.Session) {
	renderer := render.NewMazeRenderer()
	input := NewInputHandler(session)

	eventChan := make(chan tcell.Event, 64)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(clockRefreshInterval)
	defer ticker.Stop()

	renderer.Draw(screen, session.View())
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !input.HandleEvent(ev) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			renderer.Draw(screen, session.View())

		case <-ticker.C:
			// Only the clock changes between events
			if session.Elapsed() > 0 && !session.Won() {
				renderer.Draw(screen, session.View())
			}
		}
	}
}
