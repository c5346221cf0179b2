package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klokku/calview/internal/app"
	"github.com/klokku/calview/internal/config"
	"github.com/klokku/calview/internal/utils"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
	"github.com/klokku/calview/pkg/projection"
	"github.com/klokku/calview/pkg/session"
	"github.com/klokku/calview/pkg/widget"
)

type Globals struct {
	Config string `short:"c" help:"Path to the configuration file" default:"./config/application.yaml" type:"path"`
}

// CLI defines the command-line interface structure
type CLI struct {
	Globals

	Serve  ServeCmd  `cmd:"" default:"1" help:"Serve the calendar HTTP API"`
	Render RenderCmd `cmd:"" help:"Print one calendar view as JSON"`
}

type ServeCmd struct{}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return application.Run(ctx)
}

type RenderCmd struct {
	View   string `short:"v" enum:"month,week,day" default:"month" help:"View to render (month, week, day)"`
	Date   string `short:"d" help:"Anchor and selected date as YYYY-MM-DD (default: today)"`
	Events string `short:"e" help:"Events file, overrides events.file from the configuration" type:"path"`
}

func (c *RenderCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if c.Events != "" {
		cfg.Events.File = c.Events
	}
	return c.render(cfg, &utils.SystemClock{}, os.Stdout)
}

func (c *RenderCmd) render(cfg config.Application, clock utils.Clock, out io.Writer) error {
	view, err := navigation.ParseView(c.View)
	if err != nil {
		return err
	}
	events, err := event.LoadFile(cfg.Events.File)
	if err != nil {
		return err
	}
	start := clock.Now()
	if c.Date != "" {
		start, err = time.ParseInLocation(time.DateOnly, c.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", c.Date, err)
		}
	}

	w := widget.NewAt("cli", start, clock, event.NewStore(events), projection.NewProjector(cfg.Calendar.MonthCap, cfg.Calendar.WeekCap), nil)
	w.SetView(view)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(session.OutputToDTO("", w.Render()))
}
