package sticker

import (
	"fmt"
	"io/fs"
	"math"
	"math/rand"
	"os"
	"regexp"
	"strconv"
	"strings"

	"garden-backend/internal/logger"
)

// Composer builds the two-layer sticker SVG for a project: a background shape
// keyed by feeling, recolored from the background palette, with the fruit icon
// keyed by adjective centered inside it. Composition is a pure function of its
// inputs plus two static fragments; it degrades through three levels and never
// returns an error:
//
//  1. pre-authored fragments from the assets directory,
//  2. programmatic shape paths and fruit drawings,
//  3. a placeholder glyph.
type Composer struct {
	assets fs.FS
	rand   *rand.Rand
	log    *logger.Logger
}

// NewComposer creates a composer reading fragments from assetsDir. A missing
// directory is fine; everything then goes through the programmatic path.
func NewComposer(assetsDir string, r *rand.Rand) *Composer {
	c := &Composer{rand: r, log: logger.New()}
	if assetsDir != "" {
		if info, err := os.Stat(assetsDir); err == nil && info.IsDir() {
			c.assets = os.DirFS(assetsDir)
		}
	}
	return c
}

// NewComposerFS creates a composer over an explicit fragment filesystem.
// Used by tests and by callers that embed their assets.
func NewComposerFS(assets fs.FS, r *rand.Rand) *Composer {
	return &Composer{assets: assets, rand: r, log: logger.New()}
}

// Compose renders the sticker for an (adjective, feeling) pair. The animated
// flag adds the slow shape rotation and fruit bounce used in live views.
func (c *Composer) Compose(adjective, feeling string, animated bool) string {
	fruit := FruitFor(adjective)
	background := c.backgroundColor(fruit)

	if svg := c.composeFromFiles(fruit, feeling, background, animated); svg != "" {
		return svg
	}

	if svg := c.composeProgrammatic(fruit, feeling, background); svg != "" {
		return svg
	}

	return Placeholder()
}

func (c *Composer) backgroundColor(fruit string) string {
	palette := backgroundPaletteNonRed
	if IsRedFruit(fruit) {
		palette = backgroundPalette
	}
	if c.rand == nil {
		return palette[0]
	}
	return palette[c.rand.Intn(len(palette))]
}

// composeFromFiles assembles the sticker from pre-authored fragments, or
// returns "" when either fragment is unavailable or unparsable.
func (c *Composer) composeFromFiles(fruit, feeling, background string, animated bool) string {
	if c.assets == nil {
		return ""
	}

	// Shape fragments are published under the feeling's own name.
	name := strings.ToLower(feeling)
	if _, ok := feelingShapeNames[feeling]; !ok {
		name = "excited"
	}
	shapeSVG, err := fs.ReadFile(c.assets, "shapes/"+name+".svg")
	if err != nil {
		c.log.WithField("feeling", feeling).Debug("shape fragment unavailable, using programmatic sticker")
		return ""
	}
	fruitSVG, err := fs.ReadFile(c.assets, "fruits/"+fruit+".svg")
	if err != nil {
		c.log.WithField("fruit", fruit).Debug("fruit fragment unavailable, using programmatic sticker")
		return ""
	}

	shapeInner, shapeBox, ok := splitFragment(string(shapeSVG))
	if !ok {
		return ""
	}
	fruitInner, fruitBox, ok := splitFragment(string(fruitSVG))
	if !ok {
		return ""
	}

	cx := shapeBox.x + shapeBox.w/2
	cy := shapeBox.y + shapeBox.h/2
	fcx := fruitBox.x + fruitBox.w/2
	fcy := fruitBox.y + fruitBox.h/2

	// Background shape: recolored fill only, strokes stripped, scaled to 85%
	// around its own center. Fruit keeps its authored colors at 70% scale.
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" width="300" height="250">`,
		shapeBox.attr)
	fmt.Fprintf(&b, `<g transform="translate(%s, %s) scale(0.85) translate(-%s, -%s)">`,
		trimFloat(cx), trimFloat(cy), trimFloat(cx), trimFloat(cy))
	b.WriteString(recolorShapeElements(shapeInner, background))
	if animated {
		fmt.Fprintf(&b, `<animateTransform attributeName="transform" attributeType="XML" type="rotate" from="0 %s %s" to="360 %s %s" dur="5s" repeatCount="indefinite" additive="sum"/>`,
			trimFloat(cx), trimFloat(cy), trimFloat(cx), trimFloat(cy))
	}
	b.WriteString(`</g>`)
	fmt.Fprintf(&b, `<g class="sticker-fruit-group" transform="translate(%s, %s) scale(0.7) translate(-%s, -%s)">`,
		trimFloat(cx), trimFloat(cy), trimFloat(fcx), trimFloat(fcy))
	b.WriteString(fruitInner)
	if animated {
		b.WriteString(`<animateTransform attributeName="transform" attributeType="XML" type="translate" values="0,0; 0,-150; 0,0" dur="1.5s" repeatCount="indefinite" additive="sum" calcMode="spline" keySplines="0.42 0 0.58 1; 0.42 0 0.58 1" keyTimes="0; 0.5; 1"/>`)
	}
	b.WriteString(`</g></svg>`)
	return b.String()
}

// composeProgrammatic draws both layers from authored geometry.
func (c *Composer) composeProgrammatic(fruit, feeling, background string) string {
	shapePath, ok := shapePaths[ShapeNameFor(feeling)]
	if !ok {
		shapePath = shapePaths["burst"]
	}

	body := c.fruitBody(fruit, "#FF8E53")
	if body == "" {
		return ""
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 250" width="300" height="250">`+
		`<path d="%s" fill="%s" stroke="#333" stroke-width="3"/>%s</svg>`,
		shapePath, background, body)
}

// Placeholder returns the glyph rendered when no sticker can be produced.
func Placeholder() string {
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 250" width="300" height="250">` +
		`<circle cx="150" cy="125" r="80" fill="#EAE7D6" stroke="#333" stroke-width="3"/>` +
		`<text x="150" y="145" text-anchor="middle" font-family="Arial, sans-serif" font-size="64" fill="#333">?</text></svg>`
}

// ---------------------------------------------------------------------------
// Fragment parsing

type viewBox struct {
	attr       string
	x, y, w, h float64
}

var (
	svgOpenRe  = regexp.MustCompile(`(?s)<svg\b[^>]*>`)
	viewBoxRe  = regexp.MustCompile(`viewBox\s*=\s*"([^"]+)"`)
	shapeElRe  = regexp.MustCompile(`<(path|circle|rect|polygon|ellipse)\b[^>]*?/?>`)
	fillAttrRe = regexp.MustCompile(`\s(?:fill|stroke|stroke-width)\s*=\s*"[^"]*"`)
)

// splitFragment extracts the inner markup and viewBox of a fragment. Returns
// ok=false for markup that does not look like a standalone SVG.
func splitFragment(svg string) (inner string, box viewBox, ok bool) {
	open := svgOpenRe.FindStringIndex(svg)
	close := strings.LastIndex(svg, "</svg>")
	if open == nil || close < open[1] {
		return "", viewBox{}, false
	}
	inner = svg[open[1]:close]

	box = viewBox{attr: "0 0 300 250", x: 0, y: 0, w: 300, h: 250}
	if m := viewBoxRe.FindStringSubmatch(svg[open[0]:open[1]]); m != nil {
		fields := strings.Fields(m[1])
		if len(fields) == 4 {
			vals := make([]float64, 4)
			valid := true
			for i, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					valid = false
					break
				}
				vals[i] = v
			}
			if valid {
				box = viewBox{attr: m[1], x: vals[0], y: vals[1], w: vals[2], h: vals[3]}
			}
		}
	}
	return inner, box, true
}

// recolorShapeElements sets the background fill on every drawable element and
// strips strokes, leaving everything else in the fragment untouched.
func recolorShapeElements(inner, background string) string {
	return shapeElRe.ReplaceAllStringFunc(inner, func(el string) string {
		selfClosing := strings.HasSuffix(el, "/>")
		end := len(el) - 1
		if selfClosing {
			end--
		}
		tag := fillAttrRe.ReplaceAllString(el[:end], "")
		tag += ` fill="` + background + `"`
		if selfClosing {
			return tag + "/>"
		}
		return tag + ">"
	})
}

func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
