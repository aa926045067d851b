package tui

import "gallerysync/internal/service"

type galleryLoadedMsg struct {
	err error
}

type batchDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

// engineEventMsg wraps one controller event delivered over its
// notification channel.
type engineEventMsg struct {
	event service.Event
}

type eventChannelClosedMsg struct{}
