package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/wmtogether/workspace-launcher/internal/update"
	ui "github.com/wmtogether/workspace-launcher/internal/ui"
)

// Prompter abstracts reading a line of user input for testability.
type Prompter interface {
	ReadLine(prompt string) (string, error)
}

type ttyPrompter struct{}

func (ttyPrompter) ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// updatePrompter renders the blocking update question. --yes answers
// it, --non-interactive declines it, and any read failure counts as a
// dismissal, which is a "no".
type updatePrompter struct{ p Prompter }

func (u updatePrompter) ConfirmUpdate(local, remote string) bool {
	g := ui.GetGlobal()
	if g.Yes {
		return true
	}
	if g.NonInteractive {
		return false
	}

	c := ui.NewColorConfigFromGlobal()
	fmt.Println()
	fmt.Println(c.Header(" Update Available "))
	fmt.Printf("A new version %s is available.\n", c.Success(remote))
	fmt.Printf("Current version: %s\n", c.Value(local))
	if update.DowngradeHint(local, remote) {
		fmt.Println(c.Warning("Note: the published version is older than the installed one."))
	}
	fmt.Println()

	resp, err := u.p.ReadLine("Update now? [Y/n]: ")
	if err != nil {
		return false
	}
	resp = strings.ToLower(resp)
	return resp == "" || resp == "y" || resp == "yes"
}

// dialogNotifier shows errors the way the launcher's modal dialogs
// used to: a blocking, unmissable block of text.
type dialogNotifier struct{}

func (dialogNotifier) ShowError(problem string, actions ...string) {
	ui.PrintError(ui.ErrorMessage{Problem: problem, Actions: actions})
}

// getPrinter returns a UI printer bound to the current --output flag.
func getPrinter() ui.Printer { return ui.NewPrinterFromGlobal(flagOutput) }
