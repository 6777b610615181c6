package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"LocalPaint/internal/config"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/share"
	"LocalPaint/internal/ui"
)

const browseTimeout = 3 * time.Second

func main() {
	configPath := flag.String("config", config.FileName, "path to the YAML config file")
	debug := flag.Bool("debug", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := paint.Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	args := flag.Args()
	switch {
	case len(args) > 0 && strings.HasPrefix(args[0], share.Scheme):
		runViewer(cfg, args[0])
	case len(args) > 0 && args[0] == "discover":
		links, err := share.Browse(browseTimeout)
		if err != nil {
			log.Error("discover", "err", err)
			os.Exit(1)
		}
		if len(links) == 0 {
			fmt.Fprintln(os.Stderr, "no LocalPaint hosts found")
			os.Exit(1)
		}
		runViewer(cfg, links[0])
	default:
		runHost(cfg)
	}
}

func runHost(cfg *config.Resolved) {
	log := paint.Logger()
	log.Info("starting as host")

	a := app.New()
	canvasSurface := ui.NewCanvasSurface()
	var s paint.Surface = canvasSurface
	var hub *share.Hub
	if cfg.ShareEnabled {
		hub = share.NewHub()
		s = share.NewMirror(canvasSurface, hub)
	}

	painter := paint.NewPainter(s)
	*painter.Brush() = cfg.Brush
	board := ui.NewBoardWidget(painter, canvasSurface, cfg.Background)

	opts := ui.Options{Title: cfg.Title, Width: cfg.WindowWidth, Height: cfg.WindowHeight}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if hub != nil {
		opts.ShareLink = share.ShareLink(share.OutgoingIP(), cfg.SharePort)
		go func() {
			if err := share.Serve(ctx, fmt.Sprintf(":%d", cfg.SharePort), hub); err != nil {
				log.Error("share hub stopped", "err", err)
				board.SetStatus("Sharing unavailable: " + err.Error())
			}
		}()
		if cfg.Advertise {
			server, err := share.Advertise(cfg.SharePort)
			if err != nil {
				log.Warn("mDNS advertise failed", "err", err)
			} else {
				defer server.Shutdown()
			}
		}
	}

	ui.NewWindow(a, opts, board).ShowAndRun()
}

func runViewer(cfg *config.Resolved, link string) {
	log := paint.Logger()
	log.Info("starting as viewer", "link", link)

	a := app.New()
	canvasSurface := ui.NewCanvasSurface()
	board := ui.NewBoardWidget(nil, canvasSurface, cfg.Background)
	opts := ui.Options{Title: cfg.Title + " (viewing)", Width: cfg.WindowWidth, Height: cfg.WindowHeight}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		dialCtx, cancelDial := context.WithTimeout(ctx, 5*time.Second)
		v, err := share.Dial(dialCtx, link, canvasSurface)
		cancelDial()
		if err != nil {
			board.SetStatus(fmt.Sprintf("Connection failed: %v", err))
			return
		}
		defer v.Close()
		board.SetStatus("Viewing " + link)
		if err := v.Run(ctx, fyne.Do); err != nil && ctx.Err() == nil {
			board.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
		}
	}()

	ui.NewWindow(a, opts, board).ShowAndRun()
}
