package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"gitlab.com/gomidi/midi/v2"

	apcmini "github.com/kstrohbeck/apc-mini"
	"github.com/kstrohbeck/apc-mini/config"
	"github.com/kstrohbeck/apc-mini/debug"
	"github.com/kstrohbeck/apc-mini/theme"
	"github.com/kstrohbeck/apc-mini/tui"
)

func main() {
	port := flag.String("port", "", "MIDI port name prefix (overrides config)")
	debugLog := flag.Bool("debug", false, "log MIDI traffic to ~/.config/apc-mini/debug.log")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	prefix := cfg.Device.PortPrefix
	if *port != "" {
		prefix = *port
	}

	if *debugLog || cfg.Monitor.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Error enabling debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	defer midi.CloseDriver()

	conn, err := apcmini.Connect(prefix)
	if err != nil {
		if errors.Is(err, apcmini.ErrPortNotFound) {
			fmt.Printf("No MIDI port matching %q - is the device plugged in?\n", prefix)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
	defer conn.Close()

	m := tui.NewModel(conn, theme.Default(), cfg.Monitor.MirrorLEDs)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
