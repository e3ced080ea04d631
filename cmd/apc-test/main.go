package main

import (
	"fmt"
	"os"
	"time"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	apcmini "github.com/kstrohbeck/apc-mini"
)

const defaultPrefix = "APC MINI"

func main() {
	defer midi.CloseDriver()

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detect()
	case "leds":
		testLEDs()
	case "watch":
		watch()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("APC mini test scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  detect  - Find an APC mini")
	fmt.Println("  leds    - Run an LED sweep")
	fmt.Println("  watch   - Print input events as they arrive")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	for i, p := range midi.GetInPorts() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range midi.GetOutPorts() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func detect() {
	fmt.Println("Looking for an APC mini...")

	conn, err := apcmini.Connect(defaultPrefix)
	if err != nil {
		fmt.Printf("Not found: %v\n", err)
		return
	}
	defer conn.Close()

	fmt.Printf("Found input:  %s\n", conn.InPort())
	fmt.Printf("Found output: %s\n", conn.OutPort())
}

func testLEDs() {
	conn, err := apcmini.Connect(defaultPrefix)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer conn.Close()

	fmt.Println("Lighting the grid diagonal (green)...")
	for i := uint8(0); i < 8; i++ {
		pad, _ := apcmini.NewGridButtonIdx(i, i)
		conn.SetButtonColor(pad, apcmini.ColorGreen)
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Println("Cycling colors on the top row...")
	colors := []apcmini.ButtonColor{apcmini.ColorRed, apcmini.ColorYellow, apcmini.ColorGreen}
	for _, color := range colors {
		for col := uint8(0); col < 8; col++ {
			pad, _ := apcmini.NewGridButtonIdx(col, 0)
			conn.SetButtonColor(pad, color)
		}
		time.Sleep(400 * time.Millisecond)
	}

	fmt.Println("Press Enter to clear...")
	fmt.Scanln()

	if err := conn.Reset(); err != nil {
		fmt.Printf("Error clearing LEDs: %v\n", err)
	}
	fmt.Println("Done!")
}

func watch() {
	conn, err := apcmini.Connect(defaultPrefix)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer conn.Close()

	fmt.Printf("Watching %s - press buttons or move sliders, Ctrl+C to exit\n", conn.InPort())

	for {
		ev, ok := conn.Event()
		if !ok {
			return
		}
		switch ev := ev.(type) {
		case apcmini.ButtonEvent:
			state := "released"
			if ev.Pressed {
				state = "pressed"
			}
			fmt.Printf("button note=%-3d %s (%T)\n", ev.Idx.Raw(), state, ev.Idx)
		case apcmini.SliderEvent:
			fmt.Printf("slider %d -> %.3f\n", ev.Idx, ev.Value.Fraction())
		}
	}
}
