package sticker

import (
	"math/rand"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"shapes/excited.svg": &fstest.MapFile{Data: []byte(
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 250">` +
				`<path d="M 150,20 L 220,70 L 150,200 Z" fill="#000" stroke="#999" stroke-width="2"/></svg>`)},
		"shapes/inspired.svg": &fstest.MapFile{Data: []byte(
			`<svg viewBox="0 0 200 200"><circle cx="100" cy="100" r="90" fill="red"/></svg>`)},
		"fruits/apple.svg": &fstest.MapFile{Data: []byte(
			`<svg viewBox="0 0 300 250"><circle cx="150" cy="160" r="60" fill="#F05847"/></svg>`)},
		"fruits/pear.svg": &fstest.MapFile{Data: []byte(
			`<svg viewBox="0 0 100 100"><ellipse cx="50" cy="60" rx="30" ry="40" fill="#CCE270"/></svg>`)},
	}
}

func TestCompose_FromFragments(t *testing.T) {
	c := NewComposerFS(testAssets(), nil)

	svg := c.Compose("Fresh", "Excited", false)

	require.NotEmpty(t, svg)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `viewBox="0 0 300 250"`)
	assert.Contains(t, svg, `width="300"`)
	assert.Contains(t, svg, `height="250"`)

	// Shape is recolored from the palette and its authored stroke is gone.
	assert.NotContains(t, svg, `fill="#000"`)
	assert.NotContains(t, svg, `stroke="#999"`)
	// Fruit keeps its authored color.
	assert.Contains(t, svg, `fill="#F05847"`)
	// Shape shrinks to 85%, fruit to 70% of the frame.
	assert.Contains(t, svg, "scale(0.85)")
	assert.Contains(t, svg, "scale(0.7)")
	assert.NotContains(t, svg, "animateTransform")
}

func TestCompose_AnimatedAddsRotationAndBounce(t *testing.T) {
	c := NewComposerFS(testAssets(), nil)

	svg := c.Compose("Fresh", "Excited", true)

	assert.Contains(t, svg, `type="rotate"`)
	assert.Contains(t, svg, `dur="5s"`)
	assert.Contains(t, svg, `values="0,0; 0,-150; 0,0"`)
	assert.Contains(t, svg, `dur="1.5s"`)
}

func TestCompose_FruitCenteredFromItsOwnViewBox(t *testing.T) {
	c := NewComposerFS(testAssets(), nil)

	svg := c.Compose("Innovative", "Inspired", false)

	// Shape viewBox is 200x200, pear viewBox is 100x100.
	assert.Contains(t, svg, `viewBox="0 0 200 200"`)
	assert.Contains(t, svg, "translate(100, 100) scale(0.7) translate(-50, -50)")
}

func TestCompose_ProgrammaticFallback(t *testing.T) {
	tests := []struct {
		name      string
		adjective string
		feeling   string
	}{
		{"missing fruit fragment", "Quantum", "Excited"},
		{"missing shape fragment", "Fresh", "Charged"},
		{"both fragments missing", "Quantum", "Charged"},
	}

	c := NewComposerFS(testAssets(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := c.Compose(tt.adjective, tt.feeling, true)
			require.NotEmpty(t, svg)
			assert.Contains(t, svg, `viewBox="0 0 300 250"`)
			assert.Contains(t, svg, `stroke="#333"`)
		})
	}
}

func TestCompose_NoAssetsDirStillRenders(t *testing.T) {
	c := NewComposer("", rand.New(rand.NewSource(5)))

	for _, adj := range Adjectives {
		for _, feeling := range Feelings {
			svg := c.Compose(adj, feeling, false)
			require.NotEmpty(t, svg, "%s/%s", adj, feeling)
			assert.True(t, strings.HasPrefix(svg, "<svg"))
		}
	}
}

func TestCompose_RedFruitBackground(t *testing.T) {
	// Unseeded composer always picks the first eligible palette entry.
	c := NewComposerFS(testAssets(), nil)

	svg := c.Compose("Innovative", "Inspired", false) // pear is not red
	assert.NotContains(t, svg, "#F4ADB3")

	seeded := NewComposerFS(testAssets(), rand.New(rand.NewSource(2)))
	sawPink := false
	for i := 0; i < 200; i++ {
		if strings.Contains(seeded.Compose("Fresh", "Excited", false), "#F4ADB3") {
			sawPink = true
			break
		}
	}
	assert.True(t, sawPink, "apple stickers should be able to use the reserved pink")
}

func TestPlaceholder(t *testing.T) {
	svg := Placeholder()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "?")
}

func TestRecolorShapeElements(t *testing.T) {
	in := `<path d="M 0 0 Z" fill="#111" stroke="#222" stroke-width="4"/><circle cx="1" cy="1" r="1"/><animate attributeName="opacity"/>`
	out := recolorShapeElements(in, "#EAE7D6")

	assert.Equal(t, 2, strings.Count(out, `fill="#EAE7D6"`))
	assert.NotContains(t, out, "stroke")
	// Non-drawable elements pass through untouched.
	assert.Contains(t, out, `<animate attributeName="opacity"/>`)
}
