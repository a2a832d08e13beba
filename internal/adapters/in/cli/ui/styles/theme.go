package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles of the CLI.
var Theme = struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	BadgeMaster lipgloss.Style

	ListItem   lipgloss.Style
	ListBullet lipgloss.Style

	Box lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Success: lipgloss.NewStyle().
		Foreground(ColorSuccess),

	Error: lipgloss.NewStyle().
		Foreground(ColorError),

	Warning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Info: lipgloss.NewStyle().
		Foreground(ColorInfo),

	BadgeMaster: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorPrimary).
		Padding(0, 1),

	ListItem: lipgloss.NewStyle().
		Foreground(ColorText),

	ListBullet: lipgloss.NewStyle().
		Foreground(ColorPrimary),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
}

// RenderListItem returns a list item with a bullet.
func RenderListItem(item string) string {
	return Theme.ListBullet.Render(IconBullet) + " " + Theme.ListItem.Render(item)
}

// RenderMaster returns the badge shown next to a group's master.
func RenderMaster() string {
	return Theme.BadgeMaster.Render(IconMaster + " master")
}

func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}
