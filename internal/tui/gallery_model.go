// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gallerysync/internal/service"
	"gallerysync/models"
)

type galleryModel struct {
	ctx        context.Context
	controller service.SyncController

	items         []models.GalleryItem
	cursor        int
	loading       bool
	selectionMode bool
	selectedCount int
	statusErr     *models.SyncError

	spinner    spinner.Model
	quitByUser bool
}

func newGalleryModel(ctx context.Context, controller service.SyncController) galleryModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return galleryModel{
		ctx:        ctx,
		controller: controller,
		spinner:    sp,
	}
}

func (m galleryModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadGalleryCmd(),
		m.waitEventCmd(),
		m.spinner.Tick,
	)
}

// ── commands ────────────────────────────────────────────────────────────────

func (m galleryModel) loadGalleryCmd() tea.Cmd {
	return func() tea.Msg {
		return galleryLoadedMsg{err: m.controller.LoadGallery(m.ctx)}
	}
}

func (m galleryModel) uploadAllCmd() tea.Cmd {
	return func() tea.Msg {
		return batchDoneMsg{err: m.controller.UploadAll(m.ctx)}
	}
}

func (m galleryModel) uploadSelectedCmd() tea.Cmd {
	return func() tea.Msg {
		return batchDoneMsg{err: m.controller.UploadSelected(m.ctx)}
	}
}

func (m galleryModel) downloadCmd() tea.Cmd {
	return func() tea.Msg {
		return batchDoneMsg{err: m.controller.DownloadFromCloud(m.ctx)}
	}
}

func (m galleryModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.controller.DeleteItem(m.ctx, id)}
	}
}

// waitEventCmd blocks on the controller's event channel; the returned
// message re-arms itself in Update.
func (m galleryModel) waitEventCmd() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.controller.Events()
		if !ok {
			return eventChannelClosedMsg{}
		}
		return engineEventMsg{event: ev}
	}
}

// ── update ──────────────────────────────────────────────────────────────────

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case engineEventMsg:
		m.refresh()
		return m, m.waitEventCmd()

	case eventChannelClosedMsg:
		return m, nil

	case galleryLoadedMsg, batchDoneMsg, deleteDoneMsg:
		// state already updated through events; snapshot once more so a
		// surfaced error that produced no event still shows up
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m galleryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.upload):
		if m.selectionMode {
			return m, m.uploadSelectedCmd()
		}
		return m, m.uploadAllCmd()

	case key.Matches(msg, keys.download):
		return m, m.downloadCmd()

	case key.Matches(msg, keys.selection):
		if m.selectionMode {
			m.controller.ExitSelectionMode()
		} else {
			m.controller.EnterSelectionMode()
		}

	case key.Matches(msg, keys.esc):
		if m.selectionMode {
			m.controller.ExitSelectionMode()
		}

	case key.Matches(msg, keys.toggle):
		if m.selectionMode && m.cursorItem() != nil {
			m.controller.ToggleSelection(m.cursorItem().ID)
		}

	case key.Matches(msg, keys.selectAll):
		if m.selectionMode {
			m.controller.SelectAll()
		}

	case key.Matches(msg, keys.cancel):
		m.controller.CancelSync()

	case key.Matches(msg, keys.delete):
		if item := m.cursorItem(); item != nil && item.Synced() {
			return m, m.deleteCmd(item.ID)
		}
	}

	return m, nil
}

func (m *galleryModel) refresh() {
	m.items = m.controller.Items()
	m.loading = m.controller.Loading()
	m.selectionMode = m.controller.SelectionMode()
	m.selectedCount = m.controller.SelectedCount()
	m.statusErr = m.controller.LastError()
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m galleryModel) cursorItem() *models.GalleryItem {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// ── view ────────────────────────────────────────────────────────────────────

func (m galleryModel) View() string {
	var b strings.Builder

	title := "Gallery"
	if m.selectionMode {
		title = fmt.Sprintf("Gallery: selection (%d chosen)", m.selectedCount)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(helpStyle.Render("no media items"))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		b.WriteString(m.renderItem(i, item))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	return appStyle.Render(b.String())
}

func (m galleryModel) renderItem(i int, item models.GalleryItem) string {
	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}

	checkbox := ""
	if m.selectionMode {
		if item.Selected {
			checkbox = selectedStyle.Render("[x] ")
		} else {
			checkbox = "[ ] "
		}
	}

	line := fmt.Sprintf("%s%s %s", checkbox, m.statusMarker(item), item.ID)
	if item.Status == models.StatusFailed && item.Err != nil {
		line += " " + failedStyle.Render("("+item.Err.Error()+")")
	}

	return cursor + line
}

func (m galleryModel) statusMarker(item models.GalleryItem) string {
	switch item.Status {
	case models.StatusUploaded:
		return uploadedStyle.Render("●")
	case models.StatusUploading:
		return inFlightStyle.Render("↑")
	case models.StatusDownloading:
		return inFlightStyle.Render("↓")
	case models.StatusFailed:
		return failedStyle.Render("✗")
	default:
		return "○"
	}
}

func (m galleryModel) renderStatusLine() string {
	if m.loading {
		return m.spinner.View() + " syncing..."
	}
	if m.statusErr != nil {
		return errorStyle.Render("error: " + m.statusErr.Error())
	}
	return helpStyle.Render("idle")
}

func (m galleryModel) helpLine() string {
	if m.selectionMode {
		return "space toggle • a all • u upload selected • v/esc leave selection • q quit"
	}
	return "u upload all • d download • v select • x delete • c cancel • q quit"
}
