package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/convoy/internal/forms"
	"github.com/csheth/convoy/internal/submission"
)

var fieldLabels = map[string]string{
	forms.FieldName:         "Name",
	forms.FieldEmail:        "Email",
	forms.FieldRoleInterest: "Role interest",
	forms.FieldExperience:   "Experience",
	forms.FieldPortfolioURL: "Portfolio URL",
	forms.FieldMessage:      "Why Convoy?",
}

var fieldPlaceholders = map[string]string{
	forms.FieldName:         "Ada Lovelace",
	forms.FieldEmail:        "you@example.com",
	forms.FieldRoleInterest: "Backend, mobile, design…",
	forms.FieldExperience:   "Optional",
	forms.FieldPortfolioURL: "Optional https://…",
	forms.FieldMessage:      "Tell the build crew what you want to ship",
}

// formPanel renders one form's inputs. The store holds the values; inputs
// mirror it.
type formPanel struct {
	form       forms.FormID
	title      string
	fields     []string
	inputs     []textinput.Model
	focus      int
	validation string
}

func newFormPanel(form forms.FormID, title string) *formPanel {
	p := &formPanel{form: form, title: title}
	for _, name := range forms.FieldNames(form) {
		if !forms.Editable(form, name) {
			continue
		}
		input := textinput.New()
		input.Placeholder = fieldPlaceholders[name]
		input.CharLimit = 280
		input.Width = 48
		input.Prompt = ""
		p.fields = append(p.fields, name)
		p.inputs = append(p.inputs, input)
	}
	return p
}

func (p *formPanel) load(values forms.Fields) {
	for i, name := range p.fields {
		p.inputs[i].SetValue(values[name])
	}
}

func (p *formPanel) open(values forms.Fields) tea.Cmd {
	p.load(values)
	p.validation = ""
	return p.setFocus(0)
}

func (p *formPanel) close() {
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

func (p *formPanel) setFocus(idx int) tea.Cmd {
	if len(p.inputs) == 0 {
		return nil
	}
	idx = (idx%len(p.inputs) + len(p.inputs)) % len(p.inputs)
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
	p.focus = idx
	return p.inputs[idx].Focus()
}

func (p *formPanel) onLastField() bool {
	return p.focus == len(p.inputs)-1
}

func (p *formPanel) focusedField() string {
	if len(p.fields) == 0 {
		return ""
	}
	return p.fields[p.focus]
}

// edit forwards a key to the focused input and reports the field and its new
// value.
func (p *formPanel) edit(key tea.KeyMsg) (string, string, tea.Cmd) {
	if len(p.inputs) == 0 {
		return "", "", nil
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(key)
	return p.fields[p.focus], p.inputs[p.focus].Value(), cmd
}

func (p *formPanel) view(state submission.State) string {
	required := map[string]bool{}
	for _, name := range forms.Required(p.form) {
		required[name] = true
	}
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render(p.title))
	b.WriteRune('\n')
	for i, name := range p.fields {
		label := fieldLabels[name]
		if required[name] {
			label += formRequiredMarker
		}
		labelStyle := formLabelStyle
		marker := "  "
		if i == p.focus {
			labelStyle = formFocusedStyle
			marker = "▸ "
		}
		b.WriteString(fmt.Sprintf("%s%s\n  %s\n", marker, labelStyle.Render(label), p.inputs[i].View()))
	}
	if p.validation != "" {
		b.WriteString(errorStyle.Render(p.validation))
		b.WriteRune('\n')
	}
	if line := submissionLine(state); line != "" {
		b.WriteString(line)
		b.WriteRune('\n')
	}
	b.WriteString(helperStyle.Render("Tab/Shift+Tab: move • Enter on last field or Ctrl+S: submit • Esc: close"))
	return formBoxStyle.Render(b.String())
}

func submissionLine(state submission.State) string {
	switch state.Status {
	case submission.Pending:
		return helperStyle.Render("Sending…")
	case submission.Succeeded:
		return successStyle.Render(state.Message)
	case submission.Failed:
		return errorStyle.Render(state.Message)
	default:
		return ""
	}
}

func missingLabel(missing []string) string {
	labels := make([]string, 0, len(missing))
	for _, name := range missing {
		labels = append(labels, fieldLabels[name])
	}
	return "Please fill in: " + strings.Join(labels, ", ")
}
