package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "gondola.dev/pkg/gondola/internal/model"
)

// pagerChrome is the number of lines taken by the pager header and footer.
const pagerChrome = 4

type styles struct {
	title  lipgloss.Style
	faint  lipgloss.Style
	errors lipgloss.Style
	status map[m.Status]lipgloss.Style
	roles  map[Role]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		faint:  r.NewStyle().Faint(true),
		errors: r.NewStyle().Foreground(lipgloss.Color("9")),
		status: map[m.Status]lipgloss.Style{
			m.Solved: r.NewStyle().Foreground(lipgloss.Color("10")),
			m.Cached: r.NewStyle().Foreground(lipgloss.Color("14")),
			m.Failed: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		},
		roles: map[Role]lipgloss.Style{
			RoleFiller: r.NewStyle().Faint(true),
			RoleLoose:  r.NewStyle().Foreground(lipgloss.Color("8")),
			RolePart:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			RoleSymbol: r.NewStyle().Foreground(lipgloss.Color("11")),
			RoleGear:   r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true).Underline(true),
		},
	}
}

// TUI implements UI with lipgloss styling. Schematics taller than the
// terminal are shown in a Bubble Tea pager.
type TUI struct {
	output io.Writer
	styles styles
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		styles: newStyles(lipgloss.NewRenderer(output)),
	}
}

// DisplayRun shows every day of run with coloured statuses.
func (t *TUI) DisplayRun(ctx context.Context, run m.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(t.styles.title.Render("Run "+run.ID) + "\n\n")

	table := renderRunTable(run)
	for _, status := range []m.Status{m.Failed, m.Cached, m.Solved} {
		label := " " + status.String() + " "
		table = strings.ReplaceAll(table, label, " "+t.styles.status[status].Render(status.String())+" ")
	}

	b.WriteString(table)

	if failures := renderFailures(run); failures != "" {
		b.WriteString("\n" + t.styles.errors.Render(strings.TrimRight(failures, "\n")) + "\n")
	}

	return t.print(b.String())
}

// DisplayPuzzles shows the registered puzzles.
func (t *TUI) DisplayPuzzles(ctx context.Context, puzzles []PuzzleInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.print(t.styles.title.Render("Puzzles") + "\n\n" + renderPuzzleTable(puzzles))
}

// DisplaySchematic shows the grid with part numbers, loose numbers and gears
// highlighted, paging it when it does not fit the terminal.
func (t *TUI) DisplaySchematic(ctx context.Context, view SchematicView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := t.styles.title.Render(string(view.Path))
	body := t.renderSchematic(view) + "\n" + renderSchematicSummary(view.Schematic)

	_, height := t.terminalSize()
	if height == 0 || strings.Count(body, "\n")+pagerChrome <= height {
		return t.print(title + "\n\n" + body)
	}

	program := tea.NewProgram(
		newPagerModel(title, body, t.styles.faint),
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}

	return nil
}

func (t *TUI) renderSchematic(view SchematicView) string {
	g := view.Schematic.Grid()
	roles := Roles(view.Schematic)

	var b strings.Builder

	for r := 0; r < g.Height(); r++ {
		row, _ := g.Row(r)

		// consecutive cells sharing a role are styled as one run
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && roles[r][end] == roles[r][start] {
				end++
			}

			b.WriteString(t.styles.roles[roles[r][start]].Render(string(row[start:end])))

			start = end
		}

		b.WriteByte('\n')
	}

	legend := []string{
		t.styles.roles[RolePart].Render("part number"),
		t.styles.roles[RoleLoose].Render("loose number"),
		t.styles.roles[RoleGear].Render("gear"),
		t.styles.roles[RoleSymbol].Render("symbol"),
	}

	b.WriteString("\n" + strings.Join(legend, "  ") + "\n")

	return b.String()
}

// DisplayHistory shows cached answers.
func (t *TUI) DisplayHistory(ctx context.Context, entries []m.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(entries) == 0 {
		return t.print(t.styles.faint.Render("no cached answers") + "\n")
	}

	return t.print(t.styles.title.Render("Cached answers") + "\n\n" + renderHistoryTable(entries))
}

// DisplayDiff shows a run comparison with added and removed lines coloured.
func (t *TUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		return t.print(t.styles.status[m.Solved].Render("runs agree") + "\n")
	}

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			lines[i] = t.styles.title.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = t.styles.status[m.Solved].Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = t.styles.errors.Render(line)
		}
	}

	return t.print(strings.Join(lines, "\n") + "\n")
}

func (t *TUI) print(s string) error {
	_, err := fmt.Fprint(t.output, s)
	return err
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel scrolls long content inside a viewport.
type pagerModel struct {
	title    string
	content  string
	faint    lipgloss.Style
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string, faint lipgloss.Style) pagerModel {
	return pagerModel{title: title, content: content, faint: faint}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - pagerChrome
		if height < 1 {
			height = 1
		}

		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "\n  loading..."
	}

	footer := p.faint.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll  q quit", p.viewport.ScrollPercent()*100))

	return p.title + "\n\n" + p.viewport.View() + "\n" + footer
}
