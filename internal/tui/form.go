package tui

import (
	"strings"

	"solar-profit/internal/estimator"
	"solar-profit/internal/model"
	"solar-profit/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	inputStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Width(32).Padding(0, 1)
	focusedInput = inputStyle.BorderForeground(lipgloss.Color("212"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("238"))
	activeButton = buttonStyle.Background(lipgloss.Color("212")).Foreground(lipgloss.Color("0"))
	resultStyle  = lipgloss.NewStyle().MarginTop(1)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

var fieldLabels = [4]string{
	"Power (MW)",
	"First deviation (MW)",
	"Second deviation (MW)",
	"Electricity price (UAH/kWh)",
}

// buttonIndex is the focus position of the calculate button.
const buttonIndex = len(fieldLabels)

// Form is the four-field estimate form.
type Form struct {
	values [4]string
	focus  int
	est    estimator.Estimator
	result string
}

func NewForm(est estimator.Estimator) Form {
	return Form{est: est}
}

func (f Form) Init() tea.Cmd { return nil }

// Result is the text shown after the last calculation.
func (f Form) Result() string { return f.result }

// Values returns the raw field contents.
func (f Form) Values() model.RawInputs {
	return model.RawInputs{
		Power:             f.values[0],
		InitialDeviation:  f.values[1],
		ImprovedDeviation: f.values[2],
		RatePerKWh:        f.values[3],
	}
}

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return f, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % (buttonIndex + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus + buttonIndex) % (buttonIndex + 1)
	case tea.KeyEnter:
		f.calculate()
	case tea.KeyBackspace:
		if f.focus < buttonIndex {
			v := []rune(f.values[f.focus])
			if len(v) > 0 {
				f.values[f.focus] = string(v[:len(v)-1])
			}
		}
	case tea.KeyRunes:
		if f.focus < buttonIndex {
			f.values[f.focus] += filterNumeric(key.Runes)
		}
	}
	return f, nil
}

func (f *Form) calculate() {
	in, _ := model.ParseInputs(f.Values())
	f.result = report.FormatText(f.est.Compute(in))
}

func filterNumeric(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (f Form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Solar profit calculator"))
	b.WriteString("\n\n")
	for i, label := range fieldLabels {
		ls, is := labelStyle, inputStyle
		if i == f.focus {
			ls, is = focusStyle, focusedInput
		}
		b.WriteString(ls.Render(label))
		b.WriteString("\n")
		b.WriteString(is.Render(f.values[i]))
		b.WriteString("\n")
	}
	btn := buttonStyle
	if f.focus == buttonIndex {
		btn = activeButton
	}
	b.WriteString(btn.Render("Calculate profit"))
	if f.result != "" {
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(f.result))
	}
	b.WriteString(hintStyle.Render("tab/↑↓ move • enter calculate • esc quit"))
	b.WriteString("\n")
	return b.String()
}
