/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"dirpx.dev/netconnect/nccore/config"
	"dirpx.dev/netconnect/nccore/logic/command"
	"dirpx.dev/netconnect/nccore/model/filter"
	"dirpx.dev/netconnect/nccore/model/person"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// terminal renders command results. Prompts and colors are only used when
// the output is a terminal; otherwise the output is plain text suitable for
// scripts.
type terminal struct {
	out         io.Writer
	interactive bool
	color       bool
	prompt      string

	feedbackStyle lipgloss.Style
	errorStyle    lipgloss.Style
	filterStyle   lipgloss.Style
	indexStyle    lipgloss.Style
	promptStyle   lipgloss.Style
}

func newTerminal(out io.Writer, cfg config.UIConfig) *terminal {
	interactive := isTerminal(out)
	r := lipgloss.NewRenderer(out)

	return &terminal{
		out:         out,
		interactive: interactive,
		color:       interactive && cfg.Color,
		prompt:      cfg.Prompt,

		feedbackStyle: r.NewStyle().Foreground(lipgloss.Color("42")),
		errorStyle:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		filterStyle:   r.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		indexStyle:    r.NewStyle().Foreground(lipgloss.Color("244")),
		promptStyle:   r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// paint styles each line of text separately so multi-line output is not
// padded to a block.
func (t *terminal) paint(style lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (t *terminal) showPrompt() {
	if t.interactive {
		fmt.Fprint(t.out, t.paint(t.promptStyle, t.prompt))
	}
}

// interrupted ends the pending prompt line.
func (t *terminal) interrupted() {
	if t.interactive {
		fmt.Fprintln(t.out)
	}
}

func (t *terminal) welcome(storagePath string, persons int) {
	if t.interactive {
		fmt.Fprintf(t.out, "NetConnect: %d persons loaded from %s. Type \"help\" for commands.\n", persons, storagePath)
	}
}

func (t *terminal) result(res command.Result) {
	switch {
	case res.ShowHelp:
		fmt.Fprintln(t.out, command.HelpText)
	case res.Feedback != "":
		fmt.Fprintln(t.out, t.paint(t.feedbackStyle, res.Feedback))
	}
}

func (t *terminal) failure(err error) {
	fmt.Fprintln(t.out, t.paint(t.errorStyle, err.Error()))
}

// persons prints the active filter, if any, followed by the numbered list.
func (t *terminal) persons(f *filter.Filter, persons []person.Person) {
	if !f.IsEmpty() {
		fmt.Fprintln(t.out, t.paint(t.filterStyle, "Filters:\n"+f.Format()))
	}
	for _, p := range persons {
		fmt.Fprintf(t.out, "%s %s\n", t.paint(t.indexStyle, fmt.Sprintf("[%d]", p.Id.Value())), p.Format())
	}
}
