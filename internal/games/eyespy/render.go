package eyespy

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
)

const (
	cardW   = 9 // Card width including borders
	cardH   = 4 // Card height including borders
	cardGap = 1

	gridW = gridCols*cardW + (gridCols-1)*cardGap
	gridH = 3*cardH + 2*cardGap

	hudHeight = 3
	gridY     = hudHeight + 1

	minScreenW = gridW + 4
	minScreenH = gridY + gridH + 4
)

// hiddenFace is drawn on face-down cards.
const hiddenFace = '◉'

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.round.Snapshot()
	if snap.Phase == PhaseIdle {
		g.renderIdle(dst)
		return
	}

	gridX := (g.screenW - gridW) / 2
	g.renderHUD(dst, snap, gridX)
	g.renderGrid(dst, snap, gridX)

	msgY := gridY + gridH + 1
	dst.DrawTextCentered(msgY, snap.Message)

	if snap.Phase == PhaseGameOver {
		centerX := gridX + gridW/2
		centerY := gridY + gridH/2
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d/%d", g.view.finalScore, g.view.maxScore),
			"Enter: Play again | R: Title screen")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderIdle draws the start screen.
func (g *Game) renderIdle(dst *core.Screen) {
	y := g.screenH/2 - 3
	dst.DrawTextCentered(y, g.Title())
	dst.DrawTextCentered(y+2, "Memorize the cards, then find")
	dst.DrawTextCentered(y+3, "the 3 that share a color and symbol.")
	if g.round.Settings().TimerEnabled {
		dst.DrawTextCentered(y+4, "Beat the clock on every level!")
	}
	dst.DrawTextCentered(y+6, "Press Enter to start")
}

// renderHUD draws the title, level info, target color and the active timer.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, gridX int) {
	dst.DrawTextCentered(0, g.Title())
	dst.DrawTextCentered(1, fmt.Sprintf("Level: %d | Score: %d/%d", snap.Level+1, snap.Score, snap.MaxScore))

	if target, ok := core.ParseColor(string(snap.TargetColor)); ok {
		dst.DrawTextColor(gridX, 2, "Find: "+string(snap.TargetColor), target)
	}
	if status := g.statusLine(snap); status != "" {
		dst.DrawText(gridX+gridW-len([]rune(status)), 2, status)
	}
}

// statusLine returns the memorize or countdown readout for the HUD.
func (g *Game) statusLine(snap Snapshot) string {
	switch snap.Phase {
	case PhaseMemorize:
		return fmt.Sprintf("Memorize: %ds", ceilSeconds(snap.MemorizeRemaining.Milliseconds()))
	case PhaseHidden, PhaseEvaluating:
		if t := g.round.Timer(); t != nil && t.Active {
			return fmt.Sprintf("Time Left: %ds", t.Remaining)
		}
	}
	return ""
}

// renderGrid draws the 3x3 card grid.
func (g *Game) renderGrid(dst *core.Screen, snap Snapshot, gridX int) {
	faceUp := snap.Phase == PhaseMemorize
	for i, card := range snap.Cards {
		x := gridX + (i%gridCols)*(cardW+cardGap)
		y := gridY + (i/gridCols)*(cardH+cardGap)
		g.drawCard(dst, core.NewRect(x, y, cardW, cardH), i, card, faceUp || card.Flipped)
	}
}

// drawCard draws one card with its slot number on the top border.
func (g *Game) drawCard(dst *core.Screen, r core.Rect, slot int, card Card, faceUp bool) {
	color, _ := core.ParseColor(string(card.Color))

	border := core.ColorGray
	switch {
	case slot == g.cursor && g.round.Phase() != PhaseGameOver:
		border = core.ColorWhite
	case faceUp:
		border = color
	}
	dst.DrawBox(r, border)
	dst.DrawTextColor(r.X+1, r.Y, strconv.Itoa(slot+1), border)

	cx, cy := r.Center()
	if faceUp {
		face, _ := utf8.DecodeRuneInString(string(card.Symbol))
		dst.SetColor(cx, cy, face, color)
	} else {
		dst.SetColor(cx, cy, hiddenFace, core.ColorGray)
	}

	if slot == g.cursor {
		dst.SetColor(r.X-1, cy, '▶', core.ColorWhite)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)

	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, box.Y+1+i, line)
	}
}

// ceilSeconds rounds milliseconds up to whole seconds.
func ceilSeconds(ms int64) int64 {
	return (ms + 999) / 1000
}
