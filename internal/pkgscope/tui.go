package pkgscope

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	tuiApp         *tview.Application
	tuiState       *AppState
	tuiMenu        *tview.List
	tuiSourceInput *tview.InputField
	tuiNameInput   *tview.InputField
	tuiSystemCheck *tview.Checkbox
	tuiTable       *tview.Table
	tuiStatusBox   *tview.TextView
	tuiFlex        *tview.Flex
)

// runTUI builds the package browser and starts the one-shot asynchronous
// load. It returns the process exit code.
func runTUI(ctx context.Context, r Runner) int {
	tuiState = NewAppState()

	tuiApp = tview.NewApplication()

	// Left-hand page menu
	tuiMenu = tview.NewList().ShowSecondaryText(false)
	for _, page := range []Page{PageApt, PageFlatpak, PageSnap, PageAll} {
		tuiMenu.AddItem(page.String(), "", 0, nil)
	}
	tuiMenu.SetBorder(true)
	tuiMenu.SetTitle(" pkgscope ")
	tuiMenu.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		tuiState.apply(navigateMsg{page: Page(index)})
		// The name search does not survive navigation; clearing the
		// widget re-applies the empty term through its changed func.
		tuiNameInput.SetText("")
		updateTable()
	})

	// Filter bar
	tuiSourceInput = tview.NewInputField().
		SetLabel("Source ").
		SetPlaceholder("substring").
		SetFieldWidth(14).
		SetChangedFunc(func(text string) {
			tuiState.apply(sourceSearchMsg{term: text})
			updateTable()
		})
	tuiNameInput = tview.NewInputField().
		SetLabel("Name ").
		SetPlaceholder("substring").
		SetFieldWidth(24).
		SetChangedFunc(func(text string) {
			tuiState.apply(nameSearchMsg{term: text})
			updateTable()
		})
	tuiSystemCheck = tview.NewCheckbox().
		SetLabel("Include system ").
		SetChecked(tuiState.includeSystem).
		SetChangedFunc(func(checked bool) {
			tuiState.apply(includeSystemMsg{include: checked})
			updateTable()
		})

	filterFlex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(tuiSourceInput, 22, 0, false).
		AddItem(tuiNameInput, 0, 1, false).
		AddItem(tuiSystemCheck, 18, 0, false)
	filterFlex.SetBorder(true)
	filterFlex.SetTitle(" Filter ")

	// Package table
	tuiTable = tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)
	tuiTable.SetBorder(true)

	// Status bar; also where load failures are surfaced
	tuiStatusBox = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetTextAlign(tview.AlignLeft)
	tuiStatusBox.SetBorder(true)

	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(filterFlex, 3, 0, false).
		AddItem(tuiTable, 0, 1, true).
		AddItem(tuiStatusBox, 4, 0, false)

	tuiFlex = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(tuiMenu, 24, 0, false).
		AddItem(right, 0, 1, true)

	// Global keys
	tuiApp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlQ, tcell.KeyEsc:
			tuiApp.Stop()
			return nil
		case tcell.KeyTab:
			cycleFocus(false)
			return nil
		case tcell.KeyBacktab:
			cycleFocus(true)
			return nil
		}
		return event
	})

	// Table-local keys; plain runes must not fire while an input field has
	// focus, so they live on the table rather than the application.
	tuiTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune {
			switch event.Rune() {
			case 'q':
				tuiApp.Stop()
				return nil
			case 's':
				tuiSystemCheck.SetChecked(!tuiState.includeSystem)
				return nil
			}
		}
		return event
	})

	tuiApp.SetRoot(tuiFlex, true).SetFocus(tuiTable)
	updateTable()

	// One-shot load off the event path; the UI stays responsive while the
	// three package managers are queried.
	go func() {
		lists, errs := LoadPackageLists(ctx, r, nil)
		tuiApp.QueueUpdateDraw(func() {
			tuiState.apply(loadedMsg{lists: lists, errs: errs})
			updateTable()
		})
	}()

	if err := tuiApp.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tui:", err)
		return 1
	}
	return 0
}

var tuiFocusOrder []tview.Primitive

func cycleFocus(backwards bool) {
	if tuiFocusOrder == nil {
		tuiFocusOrder = []tview.Primitive{tuiMenu, tuiSourceInput, tuiNameInput, tuiSystemCheck, tuiTable}
	}

	current := tuiApp.GetFocus()
	idx := 0
	for i, p := range tuiFocusOrder {
		if p == current {
			idx = i
			break
		}
	}

	if backwards {
		idx--
		if idx < 0 {
			idx = len(tuiFocusOrder) - 1
		}
	} else {
		idx = (idx + 1) % len(tuiFocusOrder)
	}
	tuiApp.SetFocus(tuiFocusOrder[idx])
}

// updateTable redraws the table and status bar from the current state.
func updateTable() {
	if tuiTable == nil || tuiStatusBox == nil {
		return
	}

	visible := tuiState.visible()

	tuiTable.Clear()
	tuiTable.SetTitle(fmt.Sprintf(" %s ", tuiState.currentPage))

	for col, label := range []string{"Source", "Name", "Version", "System"} {
		tuiTable.SetCell(0, col, tview.NewTableCell(label).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false).
			SetExpansion(1))
	}

	for row, pkg := range visible {
		system := ""
		if pkg.IsSystem {
			system = "yes"
		}
		tuiTable.SetCell(row+1, 0, tview.NewTableCell(pkg.Source.String()))
		tuiTable.SetCell(row+1, 1, tview.NewTableCell(pkg.Name).SetExpansion(2))
		tuiTable.SetCell(row+1, 2, tview.NewTableCell(pkg.Version).SetExpansion(2))
		tuiTable.SetCell(row+1, 3, tview.NewTableCell(system))
	}
	tuiTable.ScrollToBeginning()

	var status strings.Builder
	if !tuiState.loaded {
		status.WriteString("[gray]Loading package lists[white]")
	} else {
		fmt.Fprintf(&status, "[gray]%d of %d packages shown | Tab to move, 's' to toggle system, 'q' to quit[white]",
			len(visible), len(tuiState.pagePackages()))
		for _, e := range tuiState.loadErrors {
			fmt.Fprintf(&status, "\n[red]%s[white]", tview.Escape(e))
		}
	}
	tuiStatusBox.SetText(status.String())
}
