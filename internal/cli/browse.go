package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockgraph/pkg/layout"
	"github.com/matzehuels/blockgraph/pkg/navigation"
	"github.com/matzehuels/blockgraph/pkg/pipeline"
)

// browseCommand creates the interactive drill-down browser.
func (c *CLI) browseCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "browse [blocks.json|blocks.yaml]",
		Short: "Explore the parent hierarchy interactively",
		Long: `Explore the parent hierarchy interactively.

The browser starts at the root view and lists the visible blocks first and
the dimmed top-level blocks after them. Opening a block with children drills
into it; going back returns to the previously opened block.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lang") {
				cfg.Render.Language = lang
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			input := args[0]
			blocks, err := loadBlocks(input)
			if err != nil {
				return fmt.Errorf("load blocks %s: %w", input, err)
			}

			runner := c.newRunner(input)
			defer runner.Close()

			opts := c.pipelineOptions(cfg)
			relayout := func(selected string) (*pipeline.Result, error) {
				o := opts
				o.Selected = selected
				return runner.Layout(cmd.Context(), blocks, o)
			}

			m, err := newBrowseModel(relayout, cfg.Render.Language, c.flags.selected)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "title language: de, en (default from config)")

	return cmd
}

// =============================================================================
// Key Bindings
// =============================================================================

type browseKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Home key.Binding
	Quit key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Home, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Open, k.Back, k.Home}, {k.Quit}}
}

var browseKeys = browseKeyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "open/close")),
	Back: key.NewBinding(key.WithKeys("backspace", "left", "h"), key.WithHelp("←/h", "back")),
	Home: key.NewBinding(key.WithKeys("esc", "home"), key.WithHelp("esc", "root")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// =============================================================================
// browseModel - Drill-down navigation
// =============================================================================

// layoutFunc lays out the block file for one selection.
type layoutFunc func(selected string) (*pipeline.Result, error)

// browseRow is one listed block.
type browseRow struct {
	id          string
	title       string
	level       int
	dimmed      bool
	hasChildren bool
}

// browseModel is the bubbletea model for the drill-down browser.
type browseModel struct {
	nav      *navigation.Navigator
	relayout layoutFunc
	result   *pipeline.Result
	lang     string

	rows   []browseRow
	cursor int
	status string

	keys browseKeyMap
	help help.Model
}

// newBrowseModel lays out the root view and, when start names a block with
// children, opens it.
func newBrowseModel(relayout layoutFunc, lang, start string) (browseModel, error) {
	res, err := relayout("")
	if err != nil {
		return browseModel{}, err
	}
	m := browseModel{
		nav:      navigation.NewNavigator(res.Graph),
		relayout: relayout,
		lang:     lang,
		keys:     browseKeys,
		help:     help.New(),
	}
	m.apply(res)
	if start != "" {
		if ev := m.nav.Click(start); ev == navigation.EventOpened {
			if err := m.refresh(); err != nil {
				return browseModel{}, err
			}
		}
	}
	return m, nil
}

func (m *browseModel) refresh() error {
	res, err := m.relayout(m.nav.State().SelectedID)
	if err != nil {
		return err
	}
	m.apply(res)
	return nil
}

func (m *browseModel) apply(res *pipeline.Result) {
	m.result = res
	m.rows = browseRows(res, m.lang)
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
}

// browseRows lists visible blocks, then dimmed ones, each in layout order.
func browseRows(res *pipeline.Result, lang string) []browseRow {
	var visible, dimmed []browseRow
	g := res.Graph
	for _, p := range layout.Pair(g, res.Levels, res.Positions, res.Options.Layout.Orientation) {
		row := browseRow{
			id:          p.Block.ID,
			title:       p.Block.Title.In(lang),
			level:       p.Level,
			hasChildren: g.HasChildren(p.Block.ID),
		}
		switch {
		case res.Categories.Visible.Has(row.id):
			visible = append(visible, row)
		case res.Categories.Dimmed.Has(row.id):
			row.dimmed = true
			dimmed = append(dimmed, row)
		}
	}
	return append(visible, dimmed...)
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			if len(m.rows) == 0 {
				return m, nil
			}
			row := m.rows[m.cursor]
			switch m.nav.Click(row.id) {
			case navigation.EventLeafSelected:
				m.status = fmt.Sprintf("%s has no children", row.title)
			case navigation.EventOpened, navigation.EventClosed:
				m.status = ""
				m.cursor = 0
				return m, m.refreshCmd()
			}
		case key.Matches(msg, m.keys.Back):
			if m.nav.Back() {
				m.status = ""
				m.cursor = 0
				return m, m.refreshCmd()
			}
		case key.Matches(msg, m.keys.Home):
			if m.nav.Depth() > 0 {
				m.nav.Reset()
				m.status = ""
				m.cursor = 0
				return m, m.refreshCmd()
			}
		}
	case layoutMsg:
		if msg.err != nil {
			m.status = "layout failed: " + msg.err.Error()
			return m, nil
		}
		m.apply(msg.result)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// layoutMsg carries the result of a relayout back into the update loop.
type layoutMsg struct {
	result *pipeline.Result
	err    error
}

func (m browseModel) refreshCmd() tea.Cmd {
	relayout := m.relayout
	selected := m.nav.State().SelectedID
	return func() tea.Msg {
		res, err := relayout(selected)
		return layoutMsg{result: res, err: err}
	}
}

var (
	browseCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	browseDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	browseHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(" ")
	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.rows))
	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		more := ""
		if r.hasChildren {
			more = "+"
		}
		rows = append(rows, []string{cursor, r.title, r.id, strconv.Itoa(r.level), more})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Title", "ID", "Level", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return browseHeaderStyle
			}
			if row < 0 || row >= len(m.rows) {
				return lipgloss.NewStyle()
			}
			switch {
			case row == m.cursor:
				return browseCursorStyle
			case m.rows[row].dimmed:
				return browseDimStyle
			default:
				return browseNormalStyle
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StyleWarning.Render(m.status))
		b.WriteString("\n")
	}
	if n := len(m.result.Diagnostics.Cycles); n > 0 {
		b.WriteString(StyleWarning.Render(plural(n, "cycle") + " in prerequisites"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// breadcrumb renders the trail of opened blocks.
func (m browseModel) breadcrumb() string {
	parts := []string{"root"}
	for _, id := range m.nav.Trail() {
		title := id
		if blk, ok := m.result.Graph.Block(id); ok {
			title = blk.Title.In(m.lang)
		}
		parts = append(parts, title)
	}
	last := len(parts) - 1
	parts[last] = StyleHighlight.Render(parts[last])
	return StyleDim.Render(strings.Join(parts[:last], " "+iconInfo+" ")+sepIf(last)) + parts[last]
}

func sepIf(n int) string {
	if n == 0 {
		return ""
	}
	return " " + iconInfo + " "
}
