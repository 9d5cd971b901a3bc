// cmd/picamui/main.go
package main

import (
	"fmt"
	"os"

	"github.com/AlverezYari/picamui/internal/config"
	"github.com/AlverezYari/picamui/internal/controller"
	"github.com/AlverezYari/picamui/internal/input"
	"github.com/AlverezYari/picamui/internal/logging"
	"github.com/AlverezYari/picamui/internal/render"
	"github.com/AlverezYari/picamui/pkg/camera"
)

func main() {
	// One optional positional argument: the output directory
	cfg := config.FromArgs(os.Args[1:])

	logger, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Probe terminal and camera capabilities once, up front
	renderer := render.Select(render.DetectCaps(), os.Stdout)
	avail := camera.Probe()

	ctrl, err := controller.New(cfg, avail, renderer, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting picamui...")
	if err := ctrl.InitializeCamera(); err != nil {
		fmt.Printf("Failed to initialize camera: %v\n", err)
		return
	}

	keys, err := input.Open()
	if err != nil {
		ctrl.Shutdown()
		fmt.Fprintf(os.Stderr, "Error reading keyboard: %v\n", err)
		os.Exit(1)
	}
	defer keys.Close()

	ctrl.Run(keys)
	fmt.Println("\nGoodbye!")
}
