// Command zbuf resolves a scene of colored squares with a depth buffer,
// prints the depth of every square and optionally writes the result as
// PNG, depth map PDF or JSON point list.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"seehuhn.de/go/zbuf"
	"seehuhn.de/go/zbuf/internal/config"
	"seehuhn.de/go/zbuf/internal/viewer"
)

// moveFlags collects repeated -move flags.
type moveFlags []string

func (m *moveFlags) String() string     { return strings.Join(*m, " ") }
func (m *moveFlags) Set(v string) error { *m = append(*m, v); return nil }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "zbuf:", err)
		os.Exit(1)
	}
}

func run() error {
	var moves moveFlags
	sceneFile := flag.String("scene", "", "scene file (.toml, .yaml or .yml); default is the demo scene")
	scale := flag.Int("scale", 0, "pixel scale, overrides the scene file (default 100)")
	flag.Var(&moves, "move", "move a square, as name:dx,dy,dz (repeatable, names may be abbreviated)")
	pngOut := flag.String("png", "", "write the rendered scene as PNG")
	zoom := flag.Int("zoom", 1, "enlarge the PNG by this factor")
	pdfOut := flag.String("pdf", "", "write the depth map as PDF")
	jsonOut := flag.String("json", "", "write the visible points as JSON")
	interactive := flag.Bool("i", false, "start the interactive viewer")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	zbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	scene, err := loadScene(*sceneFile, *scale)
	if err != nil {
		return err
	}

	names := make([]string, len(scene.Model()))
	for i, sq := range scene.Model() {
		names[i] = sq.Name()
	}
	for _, spec := range moves {
		mv, err := config.ParseMove(spec, names)
		if err != nil {
			return err
		}
		// rejected depth moves are logged by the scene and not fatal
		if err := scene.Move(mv.Name, mv.DX, mv.DY, mv.DZ); err != nil && !errors.Is(err, zbuf.ErrDepthRange) {
			return err
		}
	}

	if *interactive {
		if *scale == 0 {
			if err := fitTerminal(scene); err != nil {
				return err
			}
		}
		m, err := viewer.New(scene)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m).Run()
		return err
	}

	surf, err := zbuf.NewImageSurface(scene.Buffer().Scale())
	if err != nil {
		return err
	}
	if err := scene.Render(surf); err != nil {
		return err
	}

	if *pngOut != "" {
		if err := writePNG(*pngOut, surf, *zoom); err != nil {
			return err
		}
	}
	if *pdfOut != "" {
		if err := zbuf.WriteDepthPDF(*pdfOut, scene); err != nil {
			return fmt.Errorf("write %s: %w", *pdfOut, err)
		}
	}
	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, scene.Buffer()); err != nil {
			return err
		}
	}

	printReport(scene)
	return nil
}

func loadScene(fname string, scale int) (*zbuf.Scene, error) {
	if fname == "" {
		if scale == 0 {
			scale = config.DefaultScale
		}
		return zbuf.DemoScene(scale)
	}

	sc, err := config.LoadFile(fname)
	if err != nil {
		return nil, err
	}
	if scale != 0 {
		sc.Scale = scale
	}
	scene, err := sc.Build()
	if scene == nil {
		return nil, err
	}
	if err != nil {
		zbuf.Logger().Warn("initial move rejected", "error", err)
	}
	return scene, nil
}

// viewerOverhead is the number of terminal lines the viewer uses besides
// the frame and the report lines: title, status line, help and spacing.
const viewerOverhead = 7

// fallbackViewerScale is used when the terminal size is unknown.
const fallbackViewerScale = 8

// fitTerminal reduces the scale of the scene so that the viewer frame fits
// into the terminal.  Each grid cell takes one line and two columns.
func fitTerminal(scene *zbuf.Scene) error {
	fit := fallbackViewerScale
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		fit = fitScale(w, h, len(scene.Model()))
	}
	if scene.Buffer().Scale() <= fit {
		return nil
	}
	return scene.Buffer().Configure(fit)
}

// fitScale returns the largest scale whose (2·scale)-cell frame fits into
// a terminal of the given size, but at least 1.
func fitScale(width, height, squares int) int {
	byWidth := width / 4
	byHeight := (height - viewerOverhead - squares) / 2
	return max(1, min(byWidth, byHeight))
}

func writePNG(fname string, surf *zbuf.ImageSurface, zoom int) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return surf.WritePNG(f, zoom)
}

func writeJSON(fname string, buf *zbuf.ZBuffer) (err error) {
	out := struct {
		Scale     int          `json:"scale"`
		Positions []float64    `json:"positions"`
		Colors    [][4]float64 `json:"colors"`
	}{
		Scale:     buf.Scale(),
		Positions: buf.Positions(),
		Colors:    make([][4]float64, buf.Len()),
	}
	for i, c := range buf.Colors() {
		out.Colors[i] = [4]float64{c.R, c.G, c.B, c.A}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return json.NewEncoder(f).Encode(out)
}

// printReport writes the depth report to stdout, coloring each square's
// name when stdout is a terminal.
func printReport(scene *zbuf.Scene) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		_ = scene.WriteReport(os.Stdout)
		return
	}
	for _, sq := range scene.Model() {
		c := sq.Color().NRGBA()
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
		fmt.Println(st.Render(sq.Report()))
	}
}
