// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ezrec/ps2kbd/config"
	"github.com/ezrec/ps2kbd/emulator"
	"github.com/ezrec/ps2kbd/io"
	"github.com/ezrec/ps2kbd/screen"
	"github.com/ezrec/ps2kbd/script"
)

func main() {
	var conffile string
	var input string
	var starlark string
	var output string
	var verbose bool

	flag.StringVar(&conffile, "c", "", ".toml configuration file")
	flag.StringVar(&input, "i", "-", "Raw scan-code input")
	flag.StringVar(&starlark, "s", "", ".star keystroke script, instead of raw input")
	flag.StringVar(&output, "o", "-", "Display output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	conf := config.Default()
	if len(conffile) != 0 {
		var err error
		conf, err = config.Load(conffile)
		if err != nil {
			log.Fatalf("%v: %v", conffile, err)
		}
	}
	verbose = verbose || conf.Verbose

	keyboard := &io.Tape{Verbose: verbose}

	if len(starlark) != 0 {
		inf, err := os.Open(starlark)
		if err != nil {
			log.Fatalf("%v: %v", starlark, err)
		}
		defer inf.Close()

		sc := &script.Script{Verbose: verbose}
		codes, err := sc.Run(starlark, inf)
		if err != nil {
			log.Fatal(err)
		}
		keyboard.Input = bytes.NewReader(codes)
	} else if input == "-" {
		keyboard.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		keyboard.Input = inf
	}

	var display io.Display
	wait := func() {}

	switch conf.Display.Kind {
	case config.DISPLAY_SCREEN:
		term, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("screen: %v", err)
		}
		err = term.Init()
		if err != nil {
			log.Fatalf("screen: %v", err)
		}
		defer term.Fini()

		scr := screen.NewScreen(term)
		scr.Clear()
		display = scr

		// Keep the screen up until a key is pressed.
		wait = func() {
			for {
				switch term.PollEvent().(type) {
				case nil, *tcell.EventKey:
					return
				}
			}
		}
	default:
		con := &io.Console{Output: os.Stdout}
		if conf.Display.Counter {
			con.Counter = os.Stderr
		}
		if output != "-" {
			ouf, err := os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
			con.Output = ouf
		}
		display = con
	}

	emu := emulator.NewEmulator(keyboard, display)
	emu.Verbose = verbose
	emu.Buffer.Capacity = conf.Ring.Capacity

	emu.Reset()
	err := emu.Run()
	if err != nil {
		log.Print(err)
	}

	wait()

	if emu.Overruns != 0 {
		log.Printf("%v: %d bytes dropped, receive buffer full", os.Args[0], emu.Overruns)
	}
}
