// Package tui renders the gallery screen: the item list with per-item
// sync markers, selection mode, and the loading/error status line. It
// is a purely reactive consumer of the sync controller's state.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"gallerysync/internal/logger"
	"gallerysync/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	controller service.SyncController
	logger     *logger.Logger
}

func New(controller service.SyncController, logger *logger.Logger) (*TUI, error) {
	return &TUI{controller: controller, logger: logger}, nil
}

// Run drives the gallery screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newGalleryModel(ctx, t.controller)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(galleryModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
