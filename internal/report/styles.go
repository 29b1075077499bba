package report

import "github.com/charmbracelet/lipgloss"

// Color roles for check output. Codes stay inside the 16-color ANSI
// range; lipgloss degrades or drops them on limited terminals.
var (
	// styleLocation marks the file:line:column prefix of an issue.
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleFail marks the summary line when issues were found.
	styleFail = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// stylePass marks the summary line of a clean run.
	stylePass = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// styleMuted dims the checker-name suffix after each issue.
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// paint renders text in a role style, or passes it through untouched
// when the reporter runs without colors.
func (r *Reporter) paint(style lipgloss.Style, text string) string {
	if !r.useColors {
		return text
	}
	return style.Render(text)
}
