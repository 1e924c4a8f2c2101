package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/artsearch/internal/article"
	"github.com/matheuskafuri/artsearch/internal/config"
	"github.com/matheuskafuri/artsearch/internal/logger"
	"github.com/matheuskafuri/artsearch/internal/output"
	"github.com/matheuskafuri/artsearch/internal/search"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeSearch mode = iota
	modeFilter
	modeHelp
)

// App is the bubbletea model. It is the only writer of the query; every
// change recomputes the result set synchronously.
type App struct {
	cfg   *config.Config
	store *article.Store
	log   *logger.Logger

	matcher *search.Matcher
	results []article.Article
	cursor  int
	focus   focusPane
	mode    mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	categories  categoryBar

	previewScroll int
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg    *config.Config
	Store  *article.Store
	Logger *logger.Logger
	Query  string
}

func NewApp(opts RunOpts) *App {
	cfg := opts.Cfg
	if cfg == nil {
		cfg = &config.Config{ShowStats: true}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = "Search articles..."
	}
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = cfg.GetCharLimit()
	ti.SetValue(opts.Query)
	ti.Focus()

	a := &App{
		cfg:         cfg,
		store:       opts.Store,
		log:         log,
		categories:  newCategoryBar(opts.Store.Categories()),
		searchInput: ti,
		mode:        modeSearch,
	}
	a.recompute()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Query returns the raw query as typed.
func (a *App) Query() string {
	return a.searchInput.Value()
}

// Results returns the articles currently shown, in store order.
func (a *App) Results() []article.Article {
	return a.results
}

func (a *App) querying() bool {
	return !a.matcher.Empty()
}

// recompute applies the category filter and then the query.
func (a *App) recompute() {
	a.matcher = search.Compile(a.searchInput.Value())
	a.results = a.matcher.Filter(a.store.InCategories(a.categories.active()))
	a.categories.countHits(a.matcher, a.store.All())
	a.cursor = 0
	a.previewScroll = 0
	a.log.Debug("results updated",
		"query", a.matcher.Query(),
		"categories", a.categories.label(),
		"results", len(a.results),
	)
}

func (a *App) setQuery(q string) {
	a.searchInput.SetValue(q)
	a.searchInput.CursorEnd()
	a.recompute()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.searchInput.Width = max(10, msg.Width-6)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case queryChangedMsg:
		a.setQuery(msg.query)
		return a, nil
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	switch a.mode {
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHelp:
		switch msg.String() {
		case "f1", "esc", "q":
			a.mode = modeSearch
		}
		return a, nil
	}

	switch msg.String() {
	case "esc":
		if a.searchInput.Value() == "" {
			return a, tea.Quit
		}
		a.setQuery("")
		return a, nil
	case "down", "ctrl+j", "ctrl+n":
		if a.focus == focusList && a.cursor < len(a.results)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.scrollPreview(1)
		}
		return a, nil
	case "up", "ctrl+k", "ctrl+p":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.scrollPreview(-1)
		}
		return a, nil
	case "pgdown":
		a.scrollPreview(5)
		return a, nil
	case "pgup":
		a.scrollPreview(-5)
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "ctrl+f":
		a.mode = modeFilter
		a.categories.editing = true
		return a, nil
	case "f1":
		a.mode = modeHelp
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-query on actual value changes, not cursor moves etc.
	if a.searchInput.Value() != before {
		a.recompute()
	}
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+f":
		a.mode = modeSearch
		a.categories.editing = false
		return a, nil
	case "left", "h":
		a.categories.move(-1)
		return a, nil
	case "right", "l":
		a.categories.move(1)
		return a, nil
	case " ", "enter":
		if a.categories.toggleAt(a.categories.cursor) {
			a.recompute()
		}
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if a.categories.toggleAt(int(msg.String()[0] - '1')) {
			a.recompute()
		}
		return a, nil
	}
	return a, nil
}

// layout returns the pane content height and the list and preview widths.
func (a *App) layout() (contentHeight, listWidth, previewWidth int) {
	// header, search input, category bar, status bar and pane borders
	contentHeight = max(3, a.height-4-2)
	listWidth = int(float64(a.width) * 0.4)
	return contentHeight, listWidth, a.width - listWidth
}

func (a *App) selected() *search.Highlighted {
	if a.cursor >= len(a.results) {
		return nil
	}
	h := a.matcher.HighlightArticle(a.results[a.cursor])
	return &h
}

// scrollPreview moves the preview by delta lines, stopping at the top and at
// the last full page.
func (a *App) scrollPreview(delta int) {
	contentHeight, _, previewWidth := a.layout()
	limit := maxPreviewScroll(a.selected(), previewWidth-4, contentHeight)
	a.previewScroll = max(0, min(limit, a.previewScroll+delta))
}

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render("Article Search")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	contentHeight, listWidth, previewWidth := a.layout()

	// Header, with the result count while a query is active
	headerLeft := headerStyle.Render("Article Search")
	headerRight := ""
	if a.querying() {
		headerRight = headerCountStyle.Render(output.ResultCount(len(a.results)))
	}
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	input := a.searchInput.View()
	filter := a.categories.render(a.width, a.querying())

	var content string
	if len(a.results) == 0 {
		content = renderEmptyState(a.width, contentHeight+2)
	} else {
		// List pane
		innerListW := listWidth - 4 // border + padding
		listContent := renderList(a.matcher, a.results, a.cursor, contentHeight, innerListW)

		listStyle := listPaneStyle
		if a.focus == focusList {
			listStyle = listPaneActiveStyle
		}
		listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

		// Preview pane
		innerPreviewW := previewWidth - 4
		previewContent := renderPreview(a.selected(), innerPreviewW, contentHeight, a.previewScroll)

		previewStyle := previewPaneStyle
		if a.focus == focusPreview {
			previewStyle = previewPaneActiveStyle
		}
		previewPane := previewStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

		content = lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
	}

	status := renderStatusBar(
		len(a.results),
		a.store.Len(),
		a.categories.label(),
		a.width,
		a.querying(),
		a.cfg.ShowStats,
		a.mode == modeFilter,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, input, filter, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("Article Search")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Search") + "\n" +
		"  type          Filter articles as you type\n" +
		"  esc           Clear the query (quit when empty)\n\n" +
		dim.Render("Navigation") + "\n" +
		"  ↑/↓, ctrl+j/k Move through results\n" +
		"  tab           Switch focus between list and preview\n" +
		"  pgup/pgdown   Scroll the preview\n\n" +
		dim.Render("Categories") + "\n" +
		"  ctrl+f        Toggle category filter mode\n" +
		"  ←/→, h/l      Move between categories\n" +
		"  space/enter   Toggle category\n" +
		"  1-9           Toggle category by number\n\n" +
		dim.Render("General") + "\n" +
		"  f1            Toggle this help\n" +
		"  ctrl+c        Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
