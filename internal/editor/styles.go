package editor

import "github.com/charmbracelet/lipgloss"

const (
	cellWidthMax      = 16
	selectedBGColor   = "#3a3a3a"
	categoryFGColor   = "#f5c542"
	seriesFGColor     = "#5fafff"
	mutedFGColor      = "245"
	noticeErrorColor  = "1"
	noticeOKColor     = "2"
	noticeWarnColor   = "3"
)

var (
	appStyle      = lipgloss.NewStyle().Margin(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	headerStyle   = cellStyle.Bold(true).Underline(true)
	selectedStyle = cellStyle.Background(lipgloss.Color(selectedBGColor))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(categoryFGColor))
	seriesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(seriesFGColor))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedFGColor))
	inputStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)

	noticeStyles = map[string]lipgloss.Style{
		"info":    mutedStyle,
		"success": lipgloss.NewStyle().Foreground(lipgloss.Color(noticeOKColor)),
		"warn":    lipgloss.NewStyle().Foreground(lipgloss.Color(noticeWarnColor)),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(noticeErrorColor)),
	}
)
