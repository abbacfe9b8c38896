// Command conduit-demo runs a small tcell host that shows deferred
// condition delivery around a real event pump.
//
// A simulated task works through its steps, pumping pending terminal
// events between steps the way a GUI program calls processEvents. The
// event handlers know nothing about the task; they just raise. Pressing
// Esc or Ctrl+C raises "work cancelled", resizing the terminal raises
// "screen resized", and each condition is delivered to the task exactly
// when the pump call returns.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/conduit"
	"github.com/dshills/conduit/cond"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "conduit-demo.toml", "path to demo config")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	kinds := cond.NewCatalog()
	kindCancelled := kinds.Define("work cancelled")
	kindResized := kinds.Define("screen resized")

	opts := []conduit.Option{conduit.WithLogger(logger)}
	if cfg.Verbose {
		opts = append(opts, conduit.WithVerbose())
	}
	mgr := conduit.New(kinds, opts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}

	// Release the screen before reporting any error, or the message is
	// lost in the terminal restore.
	taskErr := func() error {
		defer screen.Fini()

		host := &demoHost{
			screen:        screen,
			mgr:           mgr,
			logger:        logger,
			cfg:           cfg,
			kindCancelled: kindCancelled,
			kindResized:   kindResized,
		}
		if err := host.runTask(); err != nil {
			return err
		}
		host.waitForKey()
		return nil
	}()
	if taskErr != nil {
		// Boundary errors are bugs, not conditions.
		fmt.Fprintf(os.Stderr, "Error: %v\n", taskErr)
		return 1
	}
	return 0
}

func newLogger(cfg Config) (*slog.Logger, func(), error) {
	if !cfg.Verbose || cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { f.Close() }, nil
}

type demoHost struct {
	screen        tcell.Screen
	mgr           *conduit.Manager
	logger        *slog.Logger
	cfg           Config
	kindCancelled cond.Kind
	kindResized   cond.Kind
}

// runTask works through the configured steps, pumping events between
// them. Conditions raised by the pump's event handlers arrive through
// DrainPending right after each suspension.
func (h *demoHost) runTask() error {
	scope := h.mgr.NewScope()
	defer scope.Close()
	scope.Register(h.kindCancelled)
	h.logger.Debug("task scope opened", "scope", scope.ID(), "catch", scope.Kinds())

	tick := time.Duration(h.cfg.TickMS) * time.Millisecond

	for step := 0; step < h.cfg.Steps; step++ {
		// Each step redraws inside its own resize scope so a resize
		// during the pump only restarts the drawing, not the task.
		delivered, err := h.drawStep(step)
		if err != nil {
			return err
		}
		if !delivered.Valid() {
			time.Sleep(tick)

			if err := h.mgr.Suspend(h.pump); err != nil {
				return err
			}
			delivered, _ = h.mgr.DrainPending()
		}
		if delivered.Valid() {
			scope.Close()
			if scope.Contains(delivered) && h.mgr.Matches(delivered, h.kindCancelled, "runTask") {
				h.status(fmt.Sprintf("cancelled at step %d/%d - press any key", step+1, h.cfg.Steps))
				return nil
			}
			return fmt.Errorf("unexpected condition %d (%s)", delivered, h.mgr.Describe(delivered))
		}
	}

	h.status("task complete - press any key")
	return nil
}

// drawStep renders one progress frame, retrying when a resize condition
// lands during its own pump calls. A delivered kind outside its catch
// set is returned so the enclosing scope handles it.
func (h *demoHost) drawStep(step int) (cond.Kind, error) {
	for {
		scope := h.mgr.NewScope()
		scope.Register(h.kindResized)

		h.drawProgress(step)

		if err := h.mgr.Suspend(h.pump); err != nil {
			scope.Close()
			return cond.None, err
		}
		k, ok := h.mgr.DrainPending()
		scope.Close()
		if !ok {
			return cond.None, nil
		}
		if h.mgr.Matches(k, h.kindResized, "drawStep") {
			h.screen.Sync()
			// The enclosing scope may have been flagged too; let it
			// win over a redraw.
			if outer, more := h.mgr.DrainPending(); more {
				return outer, nil
			}
			continue // redraw at the new size
		}
		return k, nil
	}
}

// pump drains every pending terminal event, the demo's stand-in for
// processEvents. Handlers raise conditions; nothing is delivered here.
func (h *demoHost) pump() {
	for h.screen.HasPendingEvent() {
		switch ev := h.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				h.mgr.Raise(h.kindCancelled)
			}
		case *tcell.EventResize:
			h.mgr.Raise(h.kindResized)
		}
	}
}

func (h *demoHost) drawProgress(step int) {
	h.screen.Clear()
	h.drawText(2, 1, "conduit demo: Esc/Ctrl+C cancels, resize redraws")
	bar := ""
	for i := 0; i < h.cfg.Steps; i++ {
		if i <= step {
			bar += "#"
		} else {
			bar += "."
		}
	}
	h.drawText(2, 3, fmt.Sprintf("[%s] %d/%d", bar, step+1, h.cfg.Steps))
	h.screen.Show()
}

func (h *demoHost) status(msg string) {
	h.drawText(2, 5, msg)
	h.screen.Show()
}

func (h *demoHost) drawText(x, y int, text string) {
	style := tcell.StyleDefault
	for i, r := range text {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

// waitForKey blocks until any key arrives.
func (h *demoHost) waitForKey() {
	for {
		if _, ok := h.screen.PollEvent().(*tcell.EventKey); ok {
			return
		}
	}
}
