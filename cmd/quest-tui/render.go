package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/engine"
	"github.com/nancyzera/jurassic-game/pkg/levels"

	"github.com/gdamore/tcell/v2"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleRaptor = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleItem   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleNear   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	styleWater  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

var groundStyles = map[domain.EnvironmentKind]tcell.Style{
	domain.EnvironmentJungle: tcell.StyleDefault.Foreground(tcell.ColorDarkGreen),
	domain.EnvironmentCave:   tcell.StyleDefault.Foreground(tcell.ColorDimGray),
	domain.EnvironmentRiver:  tcell.StyleDefault.Foreground(tcell.ColorTan),
}

var propRunes = map[levels.PropKind]rune{
	levels.PropTree:       '♣',
	levels.PropRock:       '●',
	levels.PropGrass:      '"',
	levels.PropStalagmite: '▲',
}

var logStyles = map[string]tcell.Style{
	"INFO":   styleText,
	"NOTICE": tcell.StyleDefault.Foreground(tcell.ColorAqua),
	"COMBAT": tcell.StyleDefault.Foreground(tcell.ColorOrange),
	"ERROR":  tcell.StyleDefault.Foreground(tcell.ColorRed),
}

const hudRows = 3

func (g *Game) draw() {
	g.screen.Clear()
	snap := g.session.Snapshot()

	switch snap.Mode {
	case domain.ModeMenu:
		g.drawMenu()
	case domain.ModeLevelSelect:
		g.drawLevelSelect(snap)
	default:
		g.drawWorld(snap)
		g.drawHUD(snap)
		switch snap.Mode {
		case domain.ModeWon:
			g.drawBanner("LEVEL COMPLETE!  r: choose next level   m: menu", styleTitle)
		case domain.ModeGameOver:
			g.drawBanner("GAME OVER  r: try again  m: menu", styleRaptor)
		}
		if snap.InventoryOpen {
			g.drawInventory(snap)
		}
	}

	g.drawLogs()
	g.screen.Show()
}

func (g *Game) drawMenu() {
	_, h := g.screen.Size()
	g.text(2, h/2-3, styleTitle, "JURASSIC QUEST")
	g.text(2, h/2-1, styleText, "Collect every artifact. Stay away from the raptors.")
	g.text(2, h/2+1, styleDim, "Enter: choose level   Esc: quit")
	g.text(2, h/2+2, styleDim, "w/a/s/d move (capitals sprint)   q/e turn   Tab inventory")
}

func (g *Game) drawLevelSelect(snap engine.SessionSnapshot) {
	g.text(2, 1, styleTitle, "SELECT LEVEL")
	for i, lvl := range snap.Levels {
		state := "locked"
		style := styleDim
		switch {
		case lvl.Completed:
			state, style = "completed", styleItem
		case lvl.Unlocked:
			state, style = "unlocked", styleText
		}
		g.text(2, 3+i*2, style, fmt.Sprintf("%d. %-20s %-8s %-7s %s", lvl.ID, lvl.Name, lvl.Difficulty, lvl.Environment, state))
		g.text(5, 4+i*2, styleDim, lvl.Description)
	}
	g.text(2, 4+len(snap.Levels)*2, styleDim, "1-9: start   m: menu")
}

// mapRect is the screen area the 100x100 ground is drawn into.
func (g *Game) mapRect() (x0, y0, w, h int) {
	sw, sh := g.screen.Size()
	return 0, hudRows, sw, sh - hudRows - maxLogs
}

// project maps ground coordinates to a screen cell. -Z is up.
func (g *Game) project(p domain.Vec3) (int, int, bool) {
	x0, y0, w, h := g.mapRect()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	half := float64(domain.WorldBound) + 5
	cx := int((p.X + half) / (2 * half) * float64(w-1))
	cy := int((p.Z + half) / (2 * half) * float64(h-1))
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return 0, 0, false
	}
	return x0 + cx, y0 + cy, true
}

func (g *Game) drawWorld(snap engine.SessionSnapshot) {
	layout := g.levelLayout(snap.Level)
	if layout != nil {
		ground := groundStyles[layout.Environment]
		x0, y0, w, h := g.mapRect()
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				g.screen.SetContent(x, y, '·', nil, ground)
			}
		}
		if layout.Water != nil {
			for z := -layout.Water.Length / 2; z <= layout.Water.Length/2; z++ {
				for x := -layout.Water.Width / 2; x <= layout.Water.Width/2; x++ {
					if cx, cy, ok := g.project(domain.Vec3{X: x, Z: z}); ok {
						g.screen.SetContent(cx, cy, '~', nil, styleWater)
					}
				}
			}
		}
		for _, prop := range layout.Props {
			if cx, cy, ok := g.project(prop.Position); ok {
				g.screen.SetContent(cx, cy, propRunes[prop.Kind], nil, ground.Bold(true))
			}
		}
	}

	near := make(map[string]bool, len(snap.Near))
	for _, id := range snap.Near {
		near[id] = true
	}
	for _, it := range snap.Items {
		if it.Collected {
			continue
		}
		if cx, cy, ok := g.project(it.Position); ok {
			style := styleItem
			if near[it.ID] {
				style = styleNear
			}
			g.screen.SetContent(cx, cy, '*', nil, style)
		}
	}
	for _, p := range snap.Predators {
		if cx, cy, ok := g.project(p.Position); ok {
			g.screen.SetContent(cx, cy, 'R', nil, styleRaptor)
		}
	}
	if cx, cy, ok := g.project(snap.Player.Position); ok {
		g.screen.SetContent(cx, cy, headingRune(g.yaw), nil, stylePlayer)
	}
}

// headingRune draws the player as an arrow pointing where the camera looks.
func headingRune(yaw float64) rune {
	arrows := []rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}
	sector := int(math.Round(yaw/(math.Pi/4))) % len(arrows)
	if sector < 0 {
		sector += len(arrows)
	}
	return arrows[sector]
}

func (g *Game) drawHUD(snap engine.SessionSnapshot) {
	name := ""
	if snap.Level != nil {
		name = snap.Level.Name
	}
	g.text(1, 0, styleTitle, name)
	g.text(1, 1, styleRaptor, "HP "+bar(float64(snap.Player.Health), domain.MaxHealth, 20))
	g.text(30, 1, styleWater, "ST "+bar(snap.Player.Stamina, domain.MaxStamina, 20))
	g.text(1, 2, styleText, fmt.Sprintf("Items %d/%d   Bag %d/%d", snap.Collected, snap.Total, len(snap.Player.Inventory), domain.InventorySize))
}

func (g *Game) drawInventory(snap engine.SessionSnapshot) {
	w, _ := g.screen.Size()
	x := w - 40
	if x < 0 {
		x = 0
	}
	g.text(x, hudRows, styleTitle, "INVENTORY")
	if len(snap.Player.Inventory) == 0 {
		g.text(x, hudRows+1, styleDim, "(empty)")
	}
	for i, it := range snap.Player.Inventory {
		g.text(x, hudRows+1+i*2, styleItem, fmt.Sprintf("%s [%s]", it.Name, it.Category))
		g.text(x+2, hudRows+2+i*2, styleDim, it.Description)
	}
}

func (g *Game) drawBanner(msg string, style tcell.Style) {
	w, h := g.screen.Size()
	g.text((w-len(msg))/2, h/2, style.Reverse(true), " "+msg+" ")
}

func (g *Game) drawLogs() {
	_, h := g.screen.Size()
	for i, l := range g.logs {
		g.text(1, h-maxLogs+i, logStyles[l.Type], l.Text)
	}
}

func (g *Game) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func bar(value, limit float64, width int) string {
	filled := int(math.Round(value / limit * float64(width)))
	filled = min(max0(filled), width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat(" ", width-filled) + "]"
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
