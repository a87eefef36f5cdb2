package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-backup-keeper/models"
)

// passphraseForm holds a passphrase input and, on backup, its confirmation.
type passphraseForm struct {
	inputs []textinput.Model
	focus  int
}

func newPassphraseForm(withConfirmation bool) passphraseForm {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 256
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		return in
	}

	inputs := []textinput.Model{newInput("passphrase")}
	if withConfirmation {
		inputs = append(inputs, newInput("repeat passphrase"))
	}
	inputs[0].Focus()

	return passphraseForm{inputs: inputs}
}

func (f passphraseForm) value() models.PassphraseInput {
	input := models.PassphraseInput{Passphrase: f.inputs[0].Value()}
	if len(f.inputs) > 1 {
		input.Confirmation = f.inputs[1].Value()
	}
	return input
}

// update handles focus keys and forwards the rest to the focused input.
func (f *passphraseForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case matches(keyMsg, keys.tab):
			f.move(1)
			return nil
		case matches(keyMsg, keys.backtab):
			f.move(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *passphraseForm) move(step int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + step + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// reset wipes the typed secrets.
func (f *passphraseForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f passphraseForm) view() string {
	labels := []string{"Passphrase", "Repeat passphrase"}

	var b strings.Builder
	b.WriteString("Field              │ Value\n")
	b.WriteString("───────────────────┼────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(padRight(labels[i], 18))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
