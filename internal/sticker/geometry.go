package sticker

import (
	"fmt"
	"math"
	"strings"
)

// shapePaths holds the programmatic background outlines, keyed by the shape
// names returned from ShapeNameFor. All paths are drawn in a 300x250 viewBox.
var shapePaths = map[string]string{
	"starburst": "M 150,20 L 165,80 L 220,70 L 180,110 L 210,160 L 155,145 L 150,200 L 145,145 L 90,160 L 120,110 L 80,70 L 135,80 Z",
	"cloud":     "M 80,140 Q 80,100 120,100 Q 130,70 160,70 Q 190,70 200,100 Q 240,100 240,140 Q 240,180 200,180 Q 190,210 160,210 Q 130,210 120,180 Q 80,180 80,140 Z",
	"lightning": "M 180,40 L 140,120 L 170,120 L 130,210 L 190,140 L 160,140 L 200,60 Z",
	"shield":    "M 150,30 L 220,70 L 220,140 Q 220,200 150,230 Q 80,200 80,140 L 80,70 Z",
	"arrow":     "M 150,30 L 200,90 L 175,90 L 175,210 L 125,210 L 125,90 L 100,90 Z",
	"wave":      "M 70,120 Q 100,80 130,120 Q 160,160 190,120 Q 220,80 250,120 L 250,200 Q 220,180 190,200 Q 160,220 130,200 Q 100,180 70,200 Z",
	"burst":     "M 150,40 L 165,100 L 210,80 L 180,125 L 220,160 L 165,155 L 170,210 L 150,165 L 130,210 L 135,155 L 80,160 L 120,125 L 90,80 L 135,100 Z",
	"hexagon":   "M 150,50 L 210,95 L 210,165 L 150,210 L 90,165 L 90,95 Z",
	"sun":       "M 150,60 L 155,90 L 165,65 L 165,95 L 180,75 L 175,100 L 195,85 L 185,110 L 205,105 L 190,125 L 210,130 L 190,140 L 205,155 L 185,150 L 195,175 L 175,160 L 180,185 L 165,165 L 165,195 L 155,170 L 150,200 L 145,170 L 135,195 L 135,165 L 120,185 L 125,160 L 105,175 L 115,150 L 95,155 L 110,140 L 90,130 L 110,125 L 95,105 L 115,110 L 105,85 L 125,100 L 120,75 L 135,95 L 135,65 L 145,90 Z",
	"butterfly": "M 150,80 Q 130,70 110,90 Q 90,110 100,140 Q 110,170 130,160 L 140,150 L 140,200 L 145,210 L 150,215 L 155,210 L 160,200 L 160,150 L 170,160 Q 190,170 200,140 Q 210,110 190,90 Q 170,70 150,80 M 150,60 L 155,75 L 150,80 L 145,75 Z",
}

// fruitBody draws a fruit in the sticker coordinate space. Texture detail
// (seeds, segment lines, husk fibers) is generated deterministically so a
// project's fallback sticker is stable across renders.
func (c *Composer) fruitBody(fruit, color string) string {
	switch fruit {
	case "apple":
		return fmt.Sprintf(`<g><circle cx="150" cy="160" r="60" fill="%s"/>`+
			`<rect x="145" y="90" width="10" height="20" fill="#8B4513" rx="5"/>`+
			`<ellipse cx="155" cy="95" rx="15" ry="8" fill="#228B22"/></g>`, color)
	case "pear":
		return fmt.Sprintf(`<g><ellipse cx="150" cy="180" rx="55" ry="70" fill="%s"/>`+
			`<ellipse cx="150" cy="120" rx="30" ry="35" fill="%s"/>`+
			`<rect x="145" y="90" width="10" height="20" fill="#8B4513" rx="5"/></g>`, color, color)
	case "pineapple":
		var b strings.Builder
		fmt.Fprintf(&b, `<g><ellipse cx="150" cy="160" rx="45" ry="65" fill="%s"/>`, color)
		b.WriteString(`<path d="M 150 90 L 140 110 L 160 110 Z" fill="#228B22"/>`)
		b.WriteString(`<path d="M 145 95 L 135 115 L 155 115 Z" fill="#228B22"/>`)
		b.WriteString(`<path d="M 155 95 L 145 115 L 165 115 Z" fill="#228B22"/>`)
		for i := -2; i <= 2; i++ {
			for j := -3; j <= 3; j++ {
				x := 150 + i*15
				y := 160 + j*18
				fmt.Fprintf(&b, `<path d="M %d %d L %d %d L %d %d L %d %d Z" fill="none" stroke="#8B6914" stroke-width="1" opacity="0.5"/>`,
					x, y-5, x+5, y, x, y+5, x-5, y)
			}
		}
		b.WriteString(`</g>`)
		return b.String()
	case "orange":
		var b strings.Builder
		fmt.Fprintf(&b, `<g><circle cx="150" cy="160" r="55" fill="%s"/>`, color)
		b.WriteString(`<circle cx="150" cy="160" r="50" fill="none" stroke="#fff" stroke-width="2" opacity="0.3"/>`)
		for i := 0; i < 8; i++ {
			angle := float64(i*45) * math.Pi / 180
			fmt.Fprintf(&b, `<line x1="150" y1="160" x2="%s" y2="%s" stroke="#fff" stroke-width="2" opacity="0.3"/>`,
				trimFloat(150+50*math.Cos(angle)), trimFloat(160+50*math.Sin(angle)))
		}
		b.WriteString(`</g>`)
		return b.String()
	case "strawberry":
		var b strings.Builder
		b.WriteString(`<g>`)
		fmt.Fprintf(&b, `<path d="M 150 200 C 120 170, 120 140, 150 120 C 180 140, 180 170, 150 200 Z" fill="%s"/>`, color)
		for i := 0; i < 20; i++ {
			x := 125 + (i*37)%50
			y := 130 + (i*23)%60
			fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="2" fill="#FFD700"/>`, x, y)
		}
		b.WriteString(`<path d="M 130 115 L 150 105 L 170 115 L 165 125 L 135 125 Z" fill="#228B22"/></g>`)
		return b.String()
	case "grape":
		var b strings.Builder
		b.WriteString(`<g>`)
		for _, p := range [][2]int{{150, 140}, {140, 155}, {160, 155}, {135, 170}, {150, 170}, {165, 170}, {145, 185}, {155, 185}} {
			fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="12" fill="%s" stroke="#4B0082" stroke-width="1"/>`, p[0], p[1], color)
		}
		b.WriteString(`<rect x="145" y="110" width="10" height="25" fill="#8B4513" rx="3"/></g>`)
		return b.String()
	case "kiwi":
		var b strings.Builder
		fmt.Fprintf(&b, `<g><ellipse cx="150" cy="160" rx="50" ry="55" fill="%s"/>`, color)
		b.WriteString(`<ellipse cx="150" cy="160" rx="35" ry="40" fill="#90EE90" opacity="0.7"/>`)
		for i := 0; i < 30; i++ {
			angle := float64(i*12) * math.Pi / 180
			dist := 20 + float64((i*7)%15)
			fmt.Fprintf(&b, `<line x1="150" y1="160" x2="%s" y2="%s" stroke="#000" stroke-width="1" opacity="0.3"/>`,
				trimFloat(150+dist*math.Cos(angle)), trimFloat(160+dist*math.Sin(angle)))
		}
		b.WriteString(`</g>`)
		return b.String()
	case "avocado":
		return fmt.Sprintf(`<g><ellipse cx="150" cy="170" rx="50" ry="65" fill="%s"/>`+
			`<ellipse cx="150" cy="165" rx="40" ry="50" fill="#9ACD32"/>`+
			`<circle cx="150" cy="165" r="20" fill="#8B4513"/></g>`, color)
	case "watermelon":
		var b strings.Builder
		b.WriteString(`<g>`)
		fmt.Fprintf(&b, `<path d="M 100 180 A 50 50 0 0 1 200 180 Z" fill="%s"/>`, color)
		b.WriteString(`<path d="M 105 180 A 45 45 0 0 1 195 180 Z" fill="#FFB6C1"/>`)
		b.WriteString(`<path d="M 110 180 A 40 40 0 0 1 190 180" fill="none" stroke="#90EE90" stroke-width="8"/>`)
		for i := 0; i < 8; i++ {
			x := 120 + i*10
			y := 140 + (i*11)%30
			fmt.Fprintf(&b, `<ellipse cx="%d" cy="%d" rx="3" ry="4" fill="#000"/>`, x, y)
		}
		b.WriteString(`</g>`)
		return b.String()
	case "lemon":
		return fmt.Sprintf(`<g><ellipse cx="150" cy="160" rx="40" ry="60" fill="%s"/>`+
			`<ellipse cx="150" cy="110" rx="10" ry="15" fill="%s"/>`+
			`<ellipse cx="150" cy="210" rx="10" ry="15" fill="%s"/></g>`, color, color, color)
	case "cherry":
		return fmt.Sprintf(`<g><circle cx="135" cy="170" r="25" fill="%s"/>`+
			`<circle cx="165" cy="170" r="25" fill="%s"/>`+
			`<path d="M 135 145 Q 150 110 150 100" stroke="#8B4513" stroke-width="3" fill="none"/>`+
			`<path d="M 165 145 Q 150 110 150 100" stroke="#8B4513" stroke-width="3" fill="none"/>`+
			`<circle cx="135" cy="170" r="3" fill="#fff" opacity="0.6"/>`+
			`<circle cx="165" cy="170" r="3" fill="#fff" opacity="0.6"/></g>`, color, color)
	case "banana":
		return fmt.Sprintf(`<g><path d="M 120 140 Q 150 130 180 145 Q 185 160 180 175 Q 150 185 120 175 Q 115 160 120 140 Z" fill="%s"/>`+
			`<path d="M 125 145 Q 150 138 175 150" stroke="#000" stroke-width="1" opacity="0.2" fill="none"/>`+
			`<path d="M 125 160 Q 150 153 175 165" stroke="#000" stroke-width="1" opacity="0.2" fill="none"/></g>`, color)
	case "mango":
		return fmt.Sprintf(`<g><ellipse cx="150" cy="165" rx="50" ry="60" fill="%s"/>`+
			`<rect x="145" y="100" width="10" height="15" fill="#8B4513" rx="5"/>`+
			`<ellipse cx="155" cy="105" rx="12" ry="6" fill="#228B22"/></g>`, color)
	case "coconut":
		var b strings.Builder
		fmt.Fprintf(&b, `<g><circle cx="150" cy="160" r="55" fill="%s"/>`, color)
		for i := 0; i < 15; i++ {
			angle := float64(i*24) * math.Pi / 180
			fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#8B4513" stroke-width="2"/>`,
				trimFloat(150+35*math.Cos(angle)), trimFloat(160+35*math.Sin(angle)),
				trimFloat(150+55*math.Cos(angle)), trimFloat(160+55*math.Sin(angle)))
		}
		b.WriteString(`<circle cx="140" cy="145" r="8" fill="#654321"/>`)
		b.WriteString(`<circle cx="160" cy="145" r="8" fill="#654321"/>`)
		b.WriteString(`<path d="M 140 170 Q 150 175 160 170" stroke="#654321" stroke-width="3" fill="none"/></g>`)
		return b.String()
	case "blueberry":
		var b strings.Builder
		b.WriteString(`<g>`)
		for _, p := range [][3]int{{150, 150, 22}, {135, 165, 20}, {165, 165, 20}, {150, 180, 18}} {
			fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`, p[0], p[1], p[2], color)
			fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="#fff" opacity="0.3"/>`, p[0], p[1]-p[2]/3, p[2]/4)
		}
		b.WriteString(`<ellipse cx="150" cy="142" rx="6" ry="3" fill="#654321"/></g>`)
		return b.String()
	}
	return c.fruitBody("apple", color)
}
