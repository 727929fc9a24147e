package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// errPromptAborted is returned when the user quits the URL prompt. It wraps
// context.Canceled so the process exits as if interrupted.
var errPromptAborted = fmt.Errorf("prompt aborted: %w", context.Canceled)

// =============================================================================
// urlPromptModel - Interactive URL entry
// =============================================================================

// urlPromptModel is the bubbletea model for reading a single URL.
type urlPromptModel struct {
	prompt  string
	input   []rune
	done    bool
	aborted bool
	ui      *ui
}

func newURLPromptModel(prompt string, u *ui) urlPromptModel {
	return urlPromptModel{prompt: prompt, ui: u}
}

func (m urlPromptModel) Init() tea.Cmd {
	return nil
}

func (m urlPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyCtrlU:
		m.input = m.input[:0]
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m urlPromptModel) View() string {
	if m.done || m.aborted {
		return m.prompt + string(m.input) + "\n"
	}
	return m.ui.styleTitle.Render(m.prompt) + string(m.input) + m.ui.styleDim.Render("█")
}

// Value returns the trimmed URL typed so far.
func (m urlPromptModel) Value() string {
	return strings.TrimSpace(string(m.input))
}

// =============================================================================
// Prompt entry point
// =============================================================================

// promptURL asks for a URL on in, echoing the prompt to out. A terminal gets
// the interactive prompt; anything else is read as a single line.
func promptURL(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	interactive := isTerminal(in)
	loggerFrom(ctx).Debug("prompting for URL", "interactive", interactive)
	if interactive {
		return promptInteractive(ctx, in, out)
	}
	return promptLine(in, out)
}

func promptInteractive(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	m := newURLPromptModel(promptText, newUI(out))
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	fm, ok := final.(urlPromptModel)
	if !ok || fm.aborted {
		return "", errPromptAborted
	}
	return fm.Value(), nil
}

func promptLine(in io.Reader, out io.Writer) (string, error) {
	io.WriteString(out, promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		io.WriteString(out, "\n")
	}
	return strings.TrimSpace(line), nil
}
