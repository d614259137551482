package sticker

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Descriptor is the derived icon for a project: a flower shape identifier and
// a decorative color. Two projects with the same adjective always carry the
// same shape; color is allowed to vary.
type Descriptor struct {
	Shape string `json:"fruitType"`
	Color string `json:"color"`
}

// Default icon used whenever the adjective is unset or unrecognized. Bad input
// degrades to this instead of erroring; the icon is decorative.
const (
	DefaultShape = "shape1"
	DefaultColor = "#FEA57D"
)

// Adjectives are the fixed mad-libs adjective choices.
var Adjectives = []string{
	"Revolutionary", "Innovative", "Disruptive", "Fresh", "Bold",
	"Crispy", "Juicy", "Ripe", "Organic", "Sustainable",
	"Electric", "Magnetic", "Quantum", "Neural", "Atomic",
}

// Feelings are the fixed mad-libs feeling choices.
var Feelings = []string{
	"Excited", "Inspired", "Energized", "Empowered", "Motivated",
	"Refreshed", "Invigorated", "Charged", "Enlightened", "Transformed",
}

var adjectiveShapes = map[string]string{
	"Revolutionary": "shape1",
	"Innovative":    "shape2",
	"Disruptive":    "shape3",
	"Fresh":         "shape4",
	"Bold":          "shape5",
	"Crispy":        "shape6",
	"Juicy":         "shape7",
	"Ripe":          "shape8",
	"Organic":       "shape9",
	"Sustainable":   "shape10",
	"Electric":      "shape11",
	"Magnetic":      "shape12",
	"Quantum":       "shape13",
	"Neural":        "shape14",
	"Atomic":        "shape15",
}

var feelingColors = map[string]string{
	"Excited":     "#FEA57D",
	"Inspired":    "#ABC9EF",
	"Energized":   "#ECC889",
	"Empowered":   "#7992B1",
	"Motivated":   "#F0A8F6",
	"Refreshed":   "#829E86",
	"Invigorated": "#CCBF84",
	"Enlightened": "#FEFFFE",
	"Transformed": "#D9AD99",
	"Charged":     "#BBBEA0",
}

// Palette holds the ten decorative icon colors, one per feeling.
var Palette = []string{
	"#FEA57D", "#ABC9EF", "#ECC889", "#7992B1", "#F0A8F6",
	"#829E86", "#CCBF84", "#FEFFFE", "#D9AD99", "#BBBEA0",
}

// adjectiveFruits maps adjectives to the pre-authored fruit fragment names.
// Unknown adjectives fall back to apple.
var adjectiveFruits = map[string]string{
	"Fresh":         "apple",
	"Innovative":    "pear",
	"Disruptive":    "pineapple",
	"Bold":          "orange",
	"Crispy":        "strawberry",
	"Revolutionary": "grape",
	"Experimental":  "kiwi",
	"Sustainable":   "avocado",
	"Creative":      "watermelon",
	"Juicy":         "lemon",
	"Organic":       "cherry",
	"Ripe":          "banana",
	"Electric":      "mango",
	"Magnetic":      "coconut",
	"Quantum":       "blueberry",
}

// feelingShapeNames maps feelings to the programmatic background shape names.
var feelingShapeNames = map[string]string{
	"Excited":     "starburst",
	"Inspired":    "cloud",
	"Energized":   "lightning",
	"Empowered":   "shield",
	"Motivated":   "arrow",
	"Refreshed":   "wave",
	"Invigorated": "burst",
	"Charged":     "hexagon",
	"Enlightened": "sun",
	"Transformed": "butterfly",
}

// Sticker background palette. The soft pink entry is reserved for red fruits
// so red-on-pink contrast stays acceptable.
var (
	backgroundPalette = []string{
		"#F4ADB3", "#EAE7D6", "#F1D7FD", "#CCE270", "#B4E4FF",
		"#FFE5B4", "#D4F1F4", "#FED9ED", "#E8F3D6", "#FFDAB9",
	}
	backgroundPaletteNonRed = backgroundPalette[1:]

	redFruits = map[string]bool{
		"strawberry": true,
		"cherry":     true,
		"watermelon": true,
		"apple":      true,
	}
)

// ShapeFor returns the shape identifier for an adjective. Pure: repeated calls
// with the same adjective always return the same shape.
func ShapeFor(adjective string) string {
	if shape, ok := adjectiveShapes[adjective]; ok {
		return shape
	}
	return DefaultShape
}

// ColorFor returns the palette color for a feeling, or the default.
func ColorFor(feeling string) string {
	if color, ok := feelingColors[feeling]; ok {
		return color
	}
	return DefaultColor
}

// FruitFor returns the fruit fragment name for an adjective.
func FruitFor(adjective string) string {
	if fruit, ok := adjectiveFruits[adjective]; ok {
		return fruit
	}
	return "apple"
}

// ShapeNameFor returns the background shape name for a feeling.
func ShapeNameFor(feeling string) string {
	if name, ok := feelingShapeNames[feeling]; ok {
		return name
	}
	return "burst"
}

// AllShapes returns every shape identifier in order.
func AllShapes() []string {
	shapes := make([]string, 0, len(Adjectives))
	for i := 1; i <= len(Adjectives); i++ {
		shapes = append(shapes, "shape"+strconv.Itoa(i))
	}
	return shapes
}

// IsRedFruit reports whether the fruit fragment uses red tones.
func IsRedFruit(fruit string) bool {
	return redFruits[strings.ToLower(fruit)]
}

// Mapper derives icon descriptors from mad-libs word pairs. The zero-value
// jitter configuration is fully deterministic; callers that want per-creation
// color variety pass WithJitter.
type Mapper struct {
	jitter bool
	rand   *rand.Rand
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithJitter enables the +-20 per-channel color variation applied to roughly
// 30% of generations. The rand source is injectable so tests stay repeatable.
func WithJitter(r *rand.Rand) MapperOption {
	return func(m *Mapper) {
		m.jitter = true
		m.rand = r
	}
}

// NewMapper creates a Mapper.
func NewMapper(opts ...MapperOption) *Mapper {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Generate maps an (adjective, feeling) pair to an icon descriptor. Unknown
// values degrade to defaults and never error.
func (m *Mapper) Generate(adjective, feeling string) Descriptor {
	d := Descriptor{Shape: DefaultShape, Color: DefaultColor}
	if _, ok := adjectiveShapes[adjective]; ok {
		d.Shape = adjectiveShapes[adjective]
		d.Color = ColorFor(feeling)
	}

	if m.jitter && m.rand.Float64() > 0.7 {
		d.Color = jitterColor(m.rand, d.Color)
	}
	return d
}

// BackgroundColor picks a sticker background from the palette, keeping the
// soft pink entry exclusive to red fruits.
func (m *Mapper) BackgroundColor(fruit string) string {
	r := m.rand
	if r == nil {
		return backgroundPaletteNonRed[0]
	}
	palette := backgroundPaletteNonRed
	if IsRedFruit(fruit) {
		palette = backgroundPalette
	}
	return palette[r.Intn(len(palette))]
}

// RandomDescriptor returns a random shape/color pairing for decorative use.
func RandomDescriptor(r *rand.Rand) Descriptor {
	shapes := AllShapes()
	return Descriptor{
		Shape: shapes[r.Intn(len(shapes))],
		Color: Palette[r.Intn(len(Palette))],
	}
}

// jitterColor shifts each RGB channel by up to +-20, clamped to [0, 255].
func jitterColor(r *rand.Rand, hex string) string {
	cr, cg, cb, ok := parseHexColor(hex)
	if !ok {
		return hex
	}
	const variation = 20
	shift := func(c int) int {
		c += r.Intn(variation*2) - variation
		if c < 0 {
			return 0
		}
		if c > 255 {
			return 255
		}
		return c
	}
	return fmt.Sprintf("#%02X%02X%02X", shift(cr), shift(cg), shift(cb))
}

func parseHexColor(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

// FormatLocation abbreviates a location for sticker labels: known city
// abbreviations first, word initials for long multi-word names, truncation
// for long single words, uppercase otherwise.
func FormatLocation(location string) string {
	if location == "" {
		return "GARDEN"
	}

	cityAbbreviations := map[string]string{
		"San Francisco":    "SF",
		"San Jose":         "SJ",
		"Los Angeles":      "LA",
		"New York":         "NY",
		"San Diego":        "SD",
		"Santa Clara":      "SC",
		"Mountain View":    "MV",
		"Palo Alto":        "PA",
		"Redwood City":     "RWC",
		"San Mateo":        "SM",
		"Santa Monica":     "SM",
		"Santa Cruz":       "SC",
		"San Antonio":      "SA",
		"Washington DC":    "DC",
		"Fort Worth":       "FW",
		"Colorado Springs": "CS",
		"Kansas City":      "KC",
		"New Orleans":      "NO",
	}
	if abbr, ok := cityAbbreviations[location]; ok {
		return abbr
	}

	if len(location) > 10 {
		words := strings.Fields(location)
		if len(words) > 1 {
			var b strings.Builder
			for _, w := range words {
				b.WriteString(strings.ToUpper(w[:1]))
			}
			return b.String()
		}
		return strings.ToUpper(location[:8]) + ".."
	}

	return strings.ToUpper(location)
}

// SplitLocation breaks a formatted location into at most two label lines.
func SplitLocation(text string) (string, string) {
	if len(text) <= 8 {
		return text, ""
	}
	words := strings.Fields(text)
	if len(words) <= 1 {
		return text, ""
	}
	mid := (len(words) + 1) / 2
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
}
