package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/liquid"
)

// Scene describes a button and its cells. Scene files are TOML:
//
//	spacing = 0.1
//
//	[button]
//	x = 320
//	y = 400
//	radius = 30
//	color = "#1e88e5"
//
//	[config]
//	opening_duration = 0.5
//	direction = "up"
//
//	[[cells]]
//	name = "share"
//	color = "#43a047"
type Scene struct {
	Spacing float64       `toml:"spacing"`
	Button  ButtonSection `toml:"button"`
	Config  liquid.Config `toml:"config"`
	Cells   []CellSection `toml:"cells"`
}

// ButtonSection places the root circle.
type ButtonSection struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
	Color  string  `toml:"color"`
}

// CellSection is one cell template.
type CellSection struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// DefaultScene is used when no scene file is given: four cells opening
// upward from a root near the bottom of a 640x480 window.
func DefaultScene() Scene {
	return Scene{
		Spacing: 0.1,
		Button:  ButtonSection{X: 320, Y: 400, Radius: 30, Color: "#1e88e5"},
		Config:  liquid.DefaultConfig(),
		Cells: []CellSection{
			{Name: "share", Color: "#43a047"},
			{Name: "edit", Color: "#fb8c00"},
			{Name: "copy", Color: "#8e24aa"},
			{Name: "delete", Color: "#e53935"},
		},
	}
}

// LoadScene reads a scene file. Keys missing from the file keep the values
// of DefaultScene, except cells, which replace the defaults when present.
// An empty path returns DefaultScene.
func LoadScene(path string) (Scene, error) {
	s := DefaultScene()
	if path == "" {
		return s, nil
	}
	s.Cells = nil
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Scene{}, fmt.Errorf("load scene %s: %w", path, err)
	}
	if len(s.Cells) == 0 && !md.IsDefined("cells") {
		s.Cells = DefaultScene().Cells
	}
	if err := s.Validate(); err != nil {
		return Scene{}, fmt.Errorf("load scene %s: %w", path, err)
	}
	return s, nil
}

// Validate checks colors, the root radius and the config.
func (s Scene) Validate() error {
	var errs []error
	if s.Button.Radius <= 0 {
		errs = append(errs, fmt.Errorf("button.radius: must be > 0, got %v", s.Button.Radius))
	}
	if _, err := parseColor(s.Button.Color); err != nil {
		errs = append(errs, fmt.Errorf("button.color: %w", err))
	}
	for i, c := range s.Cells {
		if _, err := parseColor(c.Color); err != nil {
			errs = append(errs, fmt.Errorf("cells[%d].color: %w", i, err))
		}
	}
	if s.Spacing < 0 {
		errs = append(errs, fmt.Errorf("spacing: must be >= 0, got %v", s.Spacing))
	}
	if err := s.Config.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// parseColor parses a "#rrggbb" color. An empty string is opaque white.
func parseColor(hex string) (liquid.Color, error) {
	if hex == "" {
		return liquid.ColorWhite, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return liquid.Color{}, err
	}
	c = c.Clamped()
	return liquid.Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Root builds the root cell.
func (s Scene) Root() *liquid.Cell {
	clr, _ := parseColor(s.Button.Color)
	root := liquid.NewCell("root", clr, nil)
	root.Center = liquid.Vec2{X: s.Button.X, Y: s.Button.Y}
	root.Radius = s.Button.Radius
	root.IconAlpha = 1
	return root
}

// Source builds the data source for the scene's cells.
func (s Scene) Source() *liquid.StaticSource {
	src := &liquid.StaticSource{Spacing: s.Spacing}
	for _, c := range s.Cells {
		clr, _ := parseColor(c.Color)
		src.Templates = append(src.Templates, liquid.CellTemplate{Name: c.Name, Color: clr})
	}
	return src
}

// Record runs one full open and, if closeAfter is set, close cycle of the
// scene headlessly at dt seconds per tick.
func (s Scene) Record(dt float64, closeAfter bool) ([]liquid.Frame, error) {
	rec, err := liquid.NewRecorder(s.Root(), s.Config, s.Source(), dt)
	if err != nil {
		return nil, err
	}
	if err := rec.Open(); err != nil {
		return nil, err
	}
	if closeAfter {
		if err := rec.Close(); err != nil {
			return nil, err
		}
	}
	return rec.Frames(), nil
}
