package liquid

import "github.com/hajimehoshi/ebiten/v2"

// CellTemplate describes a cell for StaticSource.
type CellTemplate struct {
	Name  string
	Color Color
	Icon  *ebiten.Image
}

// StaticSource is a DataSource over a fixed list of cell templates. Each
// open creates fresh cells, so a closed chain can be reopened.
type StaticSource struct {
	Templates []CellTemplate
	Spacing   float64
}

// NumberOfCells returns the number of templates.
func (s *StaticSource) NumberOfCells() int {
	return len(s.Templates)
}

// CellAt creates a cell from the template at index, or nil if out of range.
func (s *StaticSource) CellAt(index int) *Cell {
	if index < 0 || index >= len(s.Templates) {
		return nil
	}
	t := s.Templates[index]
	return NewCell(t.Name, t.Color, t.Icon)
}

// SpacingRatio returns the configured spacing.
func (s *StaticSource) SpacingRatio() float64 {
	return s.Spacing
}
