package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/hubastard/foam/engine/app"
	"github.com/hubastard/foam/engine/colors"
	"github.com/hubastard/foam/engine/core"
	glbackend "github.com/hubastard/foam/engine/gfx/gl"
	"github.com/hubastard/foam/engine/platform"
	"github.com/hubastard/foam/engine/ui"
)

// State is the demo's application state.
type State struct {
	Clicks  int
	Name    string
	Hovered bool
}

func increment(s State) State { s.Clicks++; return s }
func reset(s State) State     { s.Clicks = 0; return s }
func hovered(s State) State   { s.Hovered = true; return s }
func unhovered(s State) State { s.Hovered = false; return s }

func rename(s State, name string) State {
	s.Name = name
	return s
}

func greeting(s State) string {
	if s.Name == "" {
		return "Type your name above"
	}
	return "Hello, " + s.Name + "!"
}

func layout(t *ui.Tree, s State) ui.Node {
	banner := colors.Hex(0xDDE6F0FF)
	if s.Hovered {
		banner = colors.Hex(0xC8DCF0FF)
	}
	return t.Container(
		ui.Position(0, 0), ui.Size(800, 600),
		// Any motion clears the hover; the banner area below sets it again.
		t.MouseArea(ui.Position(0, 0), ui.Size(800, 600), ui.OnMouseOver(unhovered)),
		t.Rectangle(ui.Position(10, 10), ui.Size(320, 40), ui.Color(banner)),
		t.MouseArea(ui.Position(10, 10), ui.Size(320, 40), ui.OnMouseOver(hovered)),
		t.Text(
			ui.Position(10, 10), ui.Size(320, 40),
			ui.Text("Foam counter"), ui.Alignment(ui.AlignHCenter|ui.AlignVCenter),
		),
		t.Button(
			ui.Position(10, 100), ui.Size(100, 30),
			ui.Text(strconv.Itoa(s.Clicks)), ui.OnClicked(increment),
		),
		t.Button(
			ui.Position(120, 100), ui.Size(100, 30),
			ui.Text("Reset"), ui.OnClicked(reset),
			ui.Disabled(s.Clicks == 0),
		),
		t.TextBox(
			ui.Position(10, 150), ui.Size(210, 28),
			ui.Text(s.Name), ui.OnTextChanged(rename),
		),
		t.Text(
			ui.Position(10, 190), ui.Size(320, 24),
			ui.Text(greeting(s)), ui.Color(colors.Hex(0x333333FF)),
		),
	)
}

func main() {
	configPath := flag.String("config", "foam.toml", "path to a TOML config file")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	win, err := platform.NewGLFWWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}
	rend, err := glbackend.NewRendererGL(win, cfg)
	if err != nil {
		win.Close()
		log.Fatal(err)
	}

	if err := app.Run(cfg, win, rend, State{}, layout); err != nil {
		log.Fatal(err)
	}
}
