package editor

import "github.com/charmbracelet/bubbles/key"

// Keymap lists the editor's bindings.
type Keymap struct {
	Quit         key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	EditCell     key.Binding
	ClearCell    key.Binding
	RenameColumn key.Binding
	AddRow       key.Binding
	AddColumn    key.Binding
	DeleteRow    key.Binding
	DeleteColumn key.Binding
	SetCategory  key.Binding
	ToggleSeries key.Binding
	CycleSort    key.Binding
	Normalize    key.Binding
	Cumulative   key.Binding
	Percentage   key.Binding
	MovingAvg    key.Binding
	RangeLess    key.Binding
	RangeMore    key.Binding
	Save         key.Binding
	Import       key.Binding
	Help         key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	EditCell: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit cell"),
	),
	ClearCell: key.NewBinding(
		key.WithKeys("delete", "backspace"),
		key.WithHelp("del", "clear cell"),
	),
	RenameColumn: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename column"),
	),
	AddRow: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "add row"),
	),
	AddColumn: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add column"),
	),
	DeleteRow: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete row"),
	),
	DeleteColumn: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "delete column"),
	),
	SetCategory: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "use as X axis"),
	),
	ToggleSeries: key.NewBinding(
		key.WithKeys("v", " "),
		key.WithHelp("v", "plot/unplot column"),
	),
	CycleSort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort"),
	),
	Normalize: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "normalize"),
	),
	Cumulative: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "cumulative"),
	),
	Percentage: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "percentage"),
	),
	MovingAvg: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "moving average"),
	),
	RangeLess: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "show fewer rows"),
	),
	RangeMore: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "show more rows"),
	),
	Save: key.NewBinding(
		key.WithKeys("w", "ctrl+s"),
		key.WithHelp("w", "save"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import file"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

func (k Keymap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right, k.EditCell, k.ClearCell, k.RenameColumn,
		k.AddRow, k.AddColumn, k.DeleteRow, k.DeleteColumn, k.SetCategory,
		k.ToggleSeries, k.CycleSort, k.Normalize, k.Cumulative, k.Percentage,
		k.MovingAvg, k.RangeLess, k.RangeMore, k.Save, k.Import, k.Quit,
	}
}
