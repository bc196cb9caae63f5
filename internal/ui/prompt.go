package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/mattn/go-isatty"
)

// Prompter asks the user for free text and yes/no answers.
type Prompter interface {
	// Ask returns the user's answer to label, or defaultValue when the answer is empty.
	Ask(label, defaultValue string) (string, error)
	// Confirm returns true only for an explicit yes.
	Confirm(question string) (bool, error)
}

var (
	_ Prompter = (*TeaPrompter)(nil)
	_ Prompter = (*LinePrompter)(nil)
	_ tea.Model = (*inputModel)(nil)
	_ tea.Model = (*confirmModel)(nil)
)

// NewPrompter returns a [TeaPrompter] when in is a terminal and a [LinePrompter] otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return NewTeaPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

// inputModel is a single-line text prompt with a default value.
type inputModel struct {
	label        string
	defaultValue string
	input        textinput.Model
	help         help.Model
	keys         keyMap
	done         bool
	cancelled    bool
}

func newInputModel(label, defaultValue string) *inputModel {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Prompt = "> "
	ti.CharLimit = 150
	ti.Focus()

	return &inputModel{
		label:        label,
		defaultValue: defaultValue,
		input:        ti,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.submit):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	label := fmt.Sprintf("%s [%s]", m.label, m.defaultValue)
	return fmt.Sprintf("%s\n%s\n\n%s\n", Styles.Title(label), m.input.View(), m.help.ShortHelpView(m.keys.inputHelp()))
}

// Value returns the trimmed input, or the default when nothing was typed.
func (m *inputModel) Value() string {
	if v := strings.TrimSpace(m.input.Value()); v != "" {
		return v
	}
	return m.defaultValue
}

// confirmModel is a y/N prompt. Anything other than y is a no.
type confirmModel struct {
	question  string
	help      help.Model
	keys      keyMap
	answered  bool
	confirmed bool
	cancelled bool
}

func newConfirmModel(question string) *confirmModel {
	return &confirmModel{question: question, help: help.New(), keys: newKeyMap()}
}

func (m *confirmModel) Init() tea.Cmd { return nil }

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.yes):
		m.answered, m.confirmed = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.no):
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *confirmModel) View() string {
	if m.answered || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s [y/N]\n\n%s\n", Styles.Title(m.question), m.help.ShortHelpView(m.keys.confirmHelp()))
}

// TeaPrompter runs a bubbletea program per question.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) run(model tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, shared.ErrCancelled
		}
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

func (p *TeaPrompter) Ask(label, defaultValue string) (string, error) {
	final, err := p.run(newInputModel(label, defaultValue))
	if err != nil {
		return "", err
	}

	m := final.(*inputModel)
	if m.cancelled {
		return "", shared.ErrCancelled
	}

	value := m.Value()
	fmt.Fprintf(p.out, "%s: %s\n", label, value)
	return value, nil
}

func (p *TeaPrompter) Confirm(question string) (bool, error) {
	final, err := p.run(newConfirmModel(question))
	if err != nil {
		return false, err
	}

	m := final.(*confirmModel)
	if m.cancelled {
		return false, shared.ErrCancelled
	}
	return m.confirmed, nil
}

// LinePrompter reads answers one line at a time.
//
// End of input counts as an empty answer.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) Ask(label, defaultValue string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", label, defaultValue)

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (p *LinePrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
