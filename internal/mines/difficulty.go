package mines

import "strings"

// Difficulty is a named preset of board dimensions and mine count.
type Difficulty struct {
	Name   string
	Width  int
	Height int
	Mines  int
}

// The classic presets. Expert plays wide: double the width of Intermediate
// at the same height.
var (
	Beginner     = Difficulty{Name: "beginner", Width: 8, Height: 8, Mines: 10}
	Intermediate = Difficulty{Name: "intermediate", Width: 16, Height: 16, Mines: 40}
	Expert       = Difficulty{Name: "expert", Width: 32, Height: 16, Mines: 99}
)

// Difficulties returns the presets in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Expert}
}

// DifficultyByName finds a preset by its lowercase name.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range Difficulties() {
		if d.Name == strings.ToLower(name) {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Custom builds an ad-hoc difficulty from explicit dimensions.
func Custom(width, height, mines int) Difficulty {
	return Difficulty{Name: "custom", Width: width, Height: height, Mines: mines}
}

// IsPreset reports whether the difficulty is one of the named presets.
// Only preset rounds compete for best times.
func (d Difficulty) IsPreset() bool {
	_, ok := DifficultyByName(d.Name)
	return ok
}

// Title returns the display form of the name.
func (d Difficulty) Title() string {
	if d.Name == "" {
		return ""
	}
	return strings.ToUpper(d.Name[:1]) + d.Name[1:]
}

// Config returns a session configuration for the preset. Marks and seed are
// left for the caller.
func (d Difficulty) Config() Config {
	return Config{Width: d.Width, Height: d.Height, Mines: d.Mines}
}
