package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Minimum terminal size for the playfield.
const (
	minScreenW = 40
	minScreenH = 12
)

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
)

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	if m.sim.HelpOpen() {
		return m.helpView()
	}
	if m.screen.Width() < minScreenW || m.screen.Height() < minScreenH {
		return fmt.Sprintf("Terminal too small (%dx%d), need %dx%d. Press q to quit.",
			m.screen.Width(), m.screen.Height(), minScreenW, minScreenH)
	}

	m.renderFrame()
	return RenderScreen(m.screen)
}

// renderFrame draws the playfield, HUD and state overlay into the screen.
func (m GameModel) renderFrame() {
	m.screen.Clear()
	drawWorld(m.screen, m.sim)
	drawHUD(m.screen, m.sim, m.best)

	switch m.sim.State() {
	case runner.StateMenu:
		drawCenteredMessage(m.screen, core.ColorBrightYellow, "COIN RUNNER",
			"Enter to start",
			fmt.Sprintf("Best: %d", m.best),
			"? help  tab scores  q quit")
	case runner.StatePaused:
		drawCenteredMessage(m.screen, core.ColorBrightCyan, "PAUSED",
			"P to resume  B for menu")
	case runner.StateGameOver:
		drawCenteredMessage(m.screen, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d", m.sim.World().Score),
			"Press R to restart  B for menu")
	}
}

// helpView renders the help overlay with the full key map.
func (m GameModel) helpView() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("HOW TO PLAY"),
		"Collect coins, avoid spikes. Land on platforms to rest.",
		"You have two jumps before touching down again.",
		"",
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.screen.Width(), m.screen.Height(),
		lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(body))
}

// drawCenteredMessage draws a framed message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	drawCentered(dst, box, box.Y+1, title, c)
	for i, l := range lines {
		drawCentered(dst, box, box.Y+3+i, l, core.ColorWhite)
	}
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColored(x, y, text, c)
}
