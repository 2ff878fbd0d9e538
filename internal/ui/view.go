package ui

import (
	"strings"

	"github.com/atomicstack/consolenav/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	sideGap      = 2
	sideFraction = 0.45 // widest share of the screen the side panel may take
	minMainWidth = 16   // below this the side panel is stacked under the main column

	menuFooterText = "↑/↓ move  enter select  esc back  ctrl+c quit"
	pageFooterText = "←/→ page  esc back  ctrl+c quit"
	emptyMenuText  = "(no entries)"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries ANSI escapes already
}

// View implements tea.Model.
func (m *Model) View() string {
	bottom := m.bottomLines()
	main := m.mainLines()
	side := m.sideLines()
	if m.height > 0 {
		main = limitHeight(main, m.height-len(bottom), m.width)
	}

	var top string
	sideW := m.sidePanelWidth(side)
	switch {
	case len(side) == 0:
		top = renderLines(applyWidth(main, m.width))
	case sideW > 0:
		mainW := 0
		if m.width > 0 {
			mainW = m.width - sideW - sideGap
		}
		top = joinColumns(main, mainW, side, sideW)
	default:
		stacked := append(main, styledLine{})
		stacked = append(stacked, side...)
		top = renderLines(applyWidth(stacked, m.width))
	}
	if len(bottom) == 0 {
		return top
	}
	return top + "\n" + renderLines(applyWidth(bottom, m.width))
}

func (m *Model) mainLines() []styledLine {
	lines := make([]styledLine, 0, 16)
	if m.screen.title != "" {
		lines = append(lines, styledLine{text: m.screen.title, style: styles.Title}, styledLine{})
	}
	switch m.screen.kind {
	case screenInfo:
		for _, l := range m.screen.lines {
			lines = append(lines, styledLine{text: l, style: styles.Info})
		}
	case screenMenu:
		if len(m.screen.items) == 0 {
			lines = append(lines, styledLine{text: emptyMenuText, style: styles.Info})
		}
		width := m.width
		if width > 0 && len(m.screen.side) > 0 {
			width = 0
		}
		for _, item := range m.screen.items {
			lines = append(lines, buildItemLine(item, width))
		}
	}
	return lines
}

func (m *Model) sideLines() []styledLine {
	if len(m.screen.side) == 0 && len(m.screen.header) == 0 {
		return nil
	}
	lines := make([]styledLine, 0, len(m.screen.header)+len(m.screen.side))
	for _, h := range m.screen.header {
		lines = append(lines, styledLine{text: h, style: styles.SideHeader})
	}
	for _, s := range m.screen.side {
		lines = append(lines, styledLine{text: s, style: styles.Side})
	}
	return lines
}

func (m *Model) bottomLines() []styledLine {
	var lines []styledLine
	if m.screen.kind == screenInfo && m.screen.wait && m.hint != "" {
		lines = append(lines, styledLine{}, styledLine{text: m.hint, style: styles.Hint})
	}
	if m.mode == ModeLine {
		lines = append(lines, styledLine{text: m.input.View(), raw: true})
	}
	if m.showFooter {
		footer := pageFooterText
		if m.screen.kind == screenMenu {
			footer = menuFooterText
		}
		lines = append(lines, styledLine{}, styledLine{text: footer, style: styles.Footer})
	}
	return lines
}

// sidePanelWidth returns the column width for the side panel including its
// border, or 0 when the screen is too narrow to split.
func (m *Model) sidePanelWidth(side []styledLine) int {
	if len(side) == 0 {
		return 0
	}
	natural := 0
	for _, l := range side {
		if w := runewidth.StringWidth(l.text); w > natural {
			natural = w
		}
	}
	natural += 2 // "│ "
	if m.width <= 0 {
		return natural
	}
	if limit := int(float64(m.width) * sideFraction); natural > limit {
		natural = limit
	}
	if natural < 3 || m.width-natural-sideGap < minMainWidth {
		return 0
	}
	return natural
}

// joinColumns renders main and side next to each other. Every left row is
// padded to the same visible width so the panel stays flush.
func joinColumns(main []styledLine, mainW int, side []styledLine, sideW int) string {
	leftRows := strings.Split(renderLines(applyWidth(main, mainW)), "\n")
	target := mainW
	if target <= 0 {
		for _, row := range leftRows {
			if w := lipgloss.Width(row); w > target {
				target = w
			}
		}
	}
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > target {
			leftRows[i] = truncate.StringWithTail(row, uint(target-1), "…")
		} else if w < target {
			leftRows[i] = row + strings.Repeat(" ", target-w)
		}
	}

	border := "│ "
	if styles.SideBorder != nil {
		border = styles.SideBorder.Render(border)
	}
	rightRows := strings.Split(renderLines(applyWidth(side, sideW-2)), "\n")
	for i, row := range rightRows {
		rightRows[i] = border + row
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(leftRows, "\n"),
		strings.Repeat(" ", sideGap),
		strings.Join(rightRows, "\n"),
	)
}

// buildItemLine constructs a single styledLine for a menu item. When width
// is positive the text is padded so the active row's background spans it.
func buildItemLine(item menu.Item, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if item.Active() {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	label := item.Content()
	if item.IsFile() {
		label = "· " + label
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
