package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/triangle-animation/internal/config"
	"github.com/iburimskiy/triangle-animation/internal/game"
	"github.com/iburimskiy/triangle-animation/internal/term"
)

var (
	configFlag      = flag.String("config", "triangles.json", "Path to a JSON config file")
	widthFlag       = flag.Int("width", 0, "Initial window width in logical pixels")
	heightFlag      = flag.Int("height", 0, "Initial window height in logical pixels")
	titleFlag       = flag.String("title", "", "Window title")
	seedFlag        = flag.Uint64("seed", 0, "Random seed for frequency changes (0 = time based)")
	termFlag        = flag.Bool("term", false, "Draw in the terminal instead of a window")
	transparentFlag = flag.Bool("transparent", false, "Transparent window background")
	hudFlag         = flag.Bool("hud", false, "Show a debug overlay")
	debugFlag       = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

// loadOptions reads the config file and applies any flags that were set.
func loadOptions() (*config.Options, error) {
	opts, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.Width = *widthFlag
		case "height":
			opts.Height = *heightFlag
		case "title":
			opts.Title = *titleFlag
		case "seed":
			opts.Seed = *seedFlag
		case "term":
			opts.Terminal = *termFlag
		case "transparent":
			opts.Transparent = *transparentFlag
		case "hud":
			opts.HUD = *hudFlag
		case "debug":
			opts.Debug = *debugFlag
		}
	})

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func runTerminal(opts *config.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	host, err := term.New(screen, opts, newRand(opts.Seed))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return host.Run(ctx)
}

func runWindow(opts *config.Options) error {
	g, err := game.New(opts, newRand(opts.Seed))
	if err != nil {
		return err
	}
	return game.Run(g)
}

func main() {
	flag.Parse()

	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: %+v", *opts)

	if opts.Terminal {
		err = runTerminal(opts)
	} else {
		err = runWindow(opts)
	}
	if err != nil {
		log.Printf("fatal: %+v", err)
		fmt.Fprintf(os.Stderr, "triangles: %v\n", err)
		if !opts.Terminal {
			_ = zenity.Error(err.Error(), zenity.Title(opts.Title), zenity.ErrorIcon)
		}
		os.Exit(1)
	}
}
