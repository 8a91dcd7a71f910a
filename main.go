package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"animlists/sample"
	"animlists/tui"
	"animlists/watcher"
)

func main() {
	catalogPath := flag.String("catalog", "", "markdown catalog to show instead of the built-in list (reloaded on save)")
	mode := flag.Int("mode", 0, "initially selected animation (0-5, anything else uses the fallback fade)")
	theme := flag.String("theme", "auto", "colour theme: auto, light or dark")
	debugPath := flag.String("debug", "", "write log output to this file")
	flag.Parse()

	// The terminal belongs to the TUI, so logs go to a file or nowhere
	if *debugPath != "" {
		f, err := tea.LogToFile(*debugPath, "animlists")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	items := sample.List()
	var tuiEvents chan tui.CatalogUpdateMsg

	if *catalogPath != "" {
		var err error
		items, err = sample.ParseFile(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing catalog: %v\n", err)
			os.Exit(1)
		}

		w, err := watcher.New(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
			os.Exit(1)
		}
		defer w.Stop()

		// Forward watcher events to the TUI
		tuiEvents = make(chan tui.CatalogUpdateMsg, 10)
		w.Start()
		go func() {
			for event := range w.Events {
				tuiEvents <- tui.CatalogUpdateMsg{
					Path:  event.Path,
					Items: event.Items,
					Err:   event.Err,
				}
			}
			close(tuiEvents)
		}()
		log.Printf("Watching catalog %s (%d items)", w.Path(), len(items))
	}

	model := tui.New(items, tuiEvents, tui.Config{
		Mode:  *mode,
		Theme: *theme,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
