package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/corral/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/corral/internal/domain"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.Theme.Bold.Render(label) + " " + styles.Theme.Muted.Render(value)
}

func printSuccess(w io.Writer, format string, args ...any) error {
	return cliWriteLine(w, styles.RenderSuccess(fmt.Sprintf(format, args...)))
}

// containerRow is one line of the container listing.
type containerRow struct {
	Name  string
	Image string
	Group string
	Err   error
}

func renderContainerTable(rows []containerRow) string {
	if len(rows) == 0 {
		return cliRenderMuted("No containers defined")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.ColorBorder)).
		Headers("NAME", "IMAGE", "GROUP").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Theme.Title.Padding(0, 1)
			}
			return styles.Theme.ListItem.Padding(0, 1)
		})

	for _, r := range rows {
		image := r.Image
		if r.Err != nil {
			image = styles.Theme.Error.Render("invalid definition")
		}
		t.Row(r.Name, image, r.Group)
	}

	return t.Render()
}

func renderNameList(title, empty string, names []string) string {
	if len(names) == 0 {
		return cliRenderMuted(empty)
	}

	lines := []string{cliRenderTitle(title)}
	for _, name := range names {
		lines = append(lines, "  "+styles.RenderListItem(name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGroupInfo(g *domain.Group) string {
	lines := []string{cliRenderTitle("Group: " + g.Name)}

	if g.HasMaster() {
		lines = append(lines, "  "+cliRenderMeta("Master:", g.Master)+" "+styles.RenderMaster())
	}

	if len(g.Members) == 0 {
		lines = append(lines, "  "+cliRenderMeta("Members:", "none defined"))
	} else {
		lines = append(lines, "  "+styles.Theme.Bold.Render("Members:"))
		for _, m := range slices.Sorted(slices.Values(g.Members)) {
			lines = append(lines, "    "+styles.RenderListItem(m))
		}
	}

	return styles.Theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
