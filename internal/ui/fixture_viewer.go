package ui

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"fixturegen/internal/config"
	"fixturegen/internal/domain"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// maxPreviewBytes caps how much of a fixture is loaded into a pane
const maxPreviewBytes = 64 * 1024

// FixtureViewer displays fixtures and their contents in an interactive TUI
type FixtureViewer struct {
	config *config.Config
}

// NewFixtureViewer creates a new FixtureViewer
func NewFixtureViewer(cfg *config.Config) *FixtureViewer {
	return &FixtureViewer{config: cfg}
}

// View lists fixtures on the left and shows the selected input and expected output on the right
func (fv *FixtureViewer) View(fixtures []domain.Fixture) error {
	if len(fixtures) == 0 {
		color.Yellow("No fixtures found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, fixture := range fixtures {
		list.AddItem(listItemText(i, fixture), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	inputView := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true)
	inputView.SetBorder(true).SetTitle(" input ")

	expectedView := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true)
	expectedView.SetBorder(true).SetTitle(" expected ")

	contents := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(inputView, 0, 1, false).
		AddItem(expectedView, 0, 1, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(contents, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 3, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(fixtures))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(fixtures) {
			return
		}
		fixture := fixtures[index]
		statsView.SetText(fv.formatFixtureStats(fixture))
		inputView.SetText(previewFile(fixture.InputPath))
		inputView.ScrollToBeginning()
		if fixture.HasExpected() {
			expectedView.SetText(previewFile(fixture.ExpectedPath))
		} else {
			expectedView.SetText("(no expected output: generated as a failure case)")
		}
		expectedView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(inputView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	paneCapture := func(next tview.Primitive) func(event *tcell.EventKey) *tcell.EventKey {
		return func(event *tcell.EventKey) *tcell.EventKey {
			switch event.Key() {
			case tcell.KeyLeft, tcell.KeyEsc:
				app.SetFocus(list)
				return nil
			case tcell.KeyTab:
				app.SetFocus(next)
				return nil
			case tcell.KeyCtrlC:
				app.Stop()
				return nil
			}
			return event
		}
	}
	inputView.SetInputCapture(paneCapture(expectedView))
	expectedView.SetInputCapture(paneCapture(inputView))

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFixtureStats formats the stats header for a fixture using tview color tags
func (fv *FixtureViewer) formatFixtureStats(fixture domain.Fixture) string {
	status := "[green]success[white]"
	if !fixture.HasExpected() {
		status = "[red]fail[white]"
	}
	return fmt.Sprintf("[cyan]name:[white] [yellow]%s[white]  [cyan]case:[white] %s\n[cyan]input:[white] %s",
		tview.Escape(fixture.Name), status, tview.Escape(fixture.InputPath))
}

func listItemText(index int, fixture domain.Fixture) string {
	if fixture.HasExpected() {
		return fmt.Sprintf("[yellow]%d.[green] %s[white]", index+1, tview.Escape(fixture.FileName))
	}
	return fmt.Sprintf("[yellow]%d.[red] %s[white]", index+1, tview.Escape(fixture.FileName))
}

func headerText(fixtures []domain.Fixture) string {
	success := 0
	for _, f := range fixtures {
		if f.HasExpected() {
			success++
		}
	}
	return fmt.Sprintf(" Fixtures (%d total, %d success, %d fail) | ↑↓ navigate, → view contents, Tab switch pane, ← back, q quit ",
		len(fixtures), success, len(fixtures)-success)
}

// previewFile loads up to maxPreviewBytes of a fixture for display
func previewFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("(cannot read %s: %v)", path, err)
	}
	truncated := len(data) > maxPreviewBytes
	if truncated {
		data = data[:maxPreviewBytes]
		// Drop a rune cut in half by the limit
		for i := 0; i < utf8.UTFMax && !utf8.Valid(data); i++ {
			data = data[:len(data)-1]
		}
	}
	if !utf8.Valid(data) {
		return fmt.Sprintf("(binary content, %d bytes)", len(data))
	}
	text := string(data)
	if truncated {
		text += "\n... (truncated)"
	}
	return strings.ReplaceAll(text, "\t", "    ")
}
