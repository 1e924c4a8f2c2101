package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#93C5FD"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}
	colorTabActive = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#1E40AF"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E293B"}
	colorSurface   = lipgloss.AdaptiveColor{Light: "#EFF6FF", Dark: "#0F172A"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1E293B"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#CBD5E1"}
	colorMark      = lipgloss.AdaptiveColor{Light: "#FDE047", Dark: "#FDE047"}
	colorMarkFg    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#111827"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerCountStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				PaddingRight(1)

	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	listPaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	previewPaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	// matchStyle marks the parts of a field that match the query.
	matchStyle = lipgloss.NewStyle().
			Background(colorMark).
			Foreground(colorMarkFg).
			Bold(true)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	previewMetaStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	previewCategoryStyle = lipgloss.NewStyle().
				Foreground(colorTabActive).
				Background(colorTabBg).
				Padding(0, 1)

	previewBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	emptyTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	emptyHintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorTabActive).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	tabEmptyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(colorTabBg).
			Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Background(colorSurface)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	statusCountStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorActiveBdr).
			Padding(1, 3)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
