package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/browserquiz/internal/dom"
	"github.com/abhisek/browserquiz/internal/page"
	"github.com/abhisek/browserquiz/internal/ui/components"
	"github.com/abhisek/browserquiz/internal/ui/theme"
)

// lineBuffer accumulates rendered lines and remembers where each element
// starts so the view can scroll to it.
type lineBuffer struct {
	lines  []string
	anchor map[*dom.Element]int
}

func (b *lineBuffer) mark(el *dom.Element) {
	if el != nil {
		b.anchor[el] = len(b.lines)
	}
}

func (b *lineBuffer) add(block string) {
	b.lines = append(b.lines, strings.Split(block, "\n")...)
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Foreground(theme.Error).Width(width).Render("Error: " + s.errMsg)
	}

	cw := min(width-4, 80)
	buf := s.render(cw)
	s.adjustScroll(buf, height)

	end := min(s.scrollOffset+height, len(buf.lines))
	visible := buf.lines[s.scrollOffset:end]
	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(visible, "\n"))
}

func (s *QuizScreen) render(cw int) *lineBuffer {
	buf := &lineBuffer{anchor: make(map[*dom.Element]int)}
	wrap := lipgloss.NewStyle().Width(cw)

	buf.add(theme.Title.Render(s.def.Title))
	buf.add("")

	next := 0
	for qi, b := range s.blocks {
		buf.add(wrap.Inherit(theme.Legend).Render(b.legend))
		for ; next < len(s.controls) && s.controls[next].question == qi; next++ {
			buf.mark(s.controls[next].el)
			buf.add(s.renderControl(next, cw))
		}
		if fb := s.renderFeedback(b.feedback, cw); fb != "" {
			buf.mark(b.feedback)
			buf.add(fb)
		}
		buf.add("")
	}

	var buttons []string
	for ; next < len(s.controls); next++ {
		buf.mark(s.controls[next].el)
		buttons = append(buttons, s.renderControl(next, cw))
	}
	buf.add(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	if s.summary != nil && !s.summary.Hidden() {
		buf.add("")
		buf.mark(s.summary)
		buf.add(s.renderSummary(cw))
	}
	return buf
}

func (s *QuizScreen) renderControl(i, cw int) string {
	c := s.controls[i]
	focused := i == s.cursor

	switch c.kind {
	case controlText:
		label := theme.Subtitle.Render("  " + c.el.Label() + ":")
		if focused {
			return label + "\n" + theme.Focused.Render("▸ ") + s.input.View()
		}
		value := c.el.Value()
		if value == "" {
			return label + "\n" + theme.Hint.Render("  (no answer)")
		}
		return label + "\n" + theme.Unfocused.Render("  "+value)
	case controlRadio, controlCheckbox:
		kind := components.ChoiceRadio
		if c.kind == controlCheckbox {
			kind = components.ChoiceCheckbox
		}
		return components.Choice{
			Kind:    kind,
			Label:   c.el.Label(),
			Checked: c.el.Checked(),
			Focused: focused,
		}.View()
	default:
		return components.NewButton(c.el.TextContent(), focused).View() + "  "
	}
}

// renderFeedback styles a feedback element by the class the grader gave it.
func (s *QuizScreen) renderFeedback(fb *dom.Element, cw int) string {
	if fb == nil {
		return ""
	}
	text := fb.TextContent()
	if text == "" {
		return ""
	}
	style := theme.Body
	switch {
	case fb.HasClass(page.CorrectClass):
		style = theme.Correct
	case fb.HasClass(page.IncorrectClass):
		style = theme.Incorrect
	}
	return lipgloss.NewStyle().Width(cw).PaddingLeft(2).Inherit(style).Render(text)
}

func (s *QuizScreen) renderSummary(cw int) string {
	overallStyle := theme.Body
	passed := false
	if s.overall != nil {
		switch {
		case s.overall.HasClass(page.PassClass):
			overallStyle, passed = theme.Pass, true
		case s.overall.HasClass(page.FailClass):
			overallStyle = theme.Fail
		}
	}

	var parts []string
	if s.overall != nil {
		parts = append(parts, overallStyle.Render(s.overall.TextContent()))
	}
	if s.score != nil {
		parts = append(parts, theme.Body.Render(s.score.TextContent()))
	}
	if s.last != nil {
		parts = append(parts, components.ScoreBar{
			Percent: s.last.Percentage,
			Passed:  passed,
			Width:   cw - 6,
		}.View())
		parts = append(parts, theme.Hint.Render(
			fmt.Sprintf("Passing mark: %d%%", s.def.PassPercent)))
	}
	return theme.Summary.Width(cw).Render(strings.Join(parts, "\n"))
}

// adjustScroll keeps the focused control visible, or brings a requested
// scroll target to the top of the viewport.
func (s *QuizScreen) adjustScroll(buf *lineBuffer, height int) {
	if height <= 0 {
		s.scrollOffset = 0
		return
	}
	maxOffset := max(len(buf.lines)-height, 0)

	if s.scrollTo != nil {
		if line, ok := buf.anchor[s.scrollTo]; ok {
			s.scrollOffset = line
		}
		s.scrollTo = nil
	} else if len(s.controls) > 0 {
		line := buf.anchor[s.controls[s.cursor].el]
		if line < s.scrollOffset {
			s.scrollOffset = line
		}
		if line >= s.scrollOffset+height {
			s.scrollOffset = line - height + 1
		}
	}

	s.scrollOffset = min(max(s.scrollOffset, 0), maxOffset)
}
