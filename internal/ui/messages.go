package ui

import (
	"folio/internal/page"
	"folio/internal/portfolio"
)

// SelectProjectMsg is sent when a gallery tile is clicked.
type SelectProjectMsg struct {
	Project *portfolio.Project
}

// DismissModalMsg is sent when the user closes the project modal.
type DismissModalMsg struct{}

// SubmitMsg asks the app to submit the contact form.
type SubmitMsg struct{}

// ConfigReloadedMsg carries a page document reloaded from disk.
type ConfigReloadedMsg struct {
	Config *portfolio.Config
}

// submitResultMsg is the settled outcome of one relay POST.
type submitResultMsg struct {
	req page.Request
	err error
}

// toastExpireMsg fires when some toast deadline may have passed.
type toastExpireMsg struct{}

// toastFrameMsg redraws toast progress bars.
type toastFrameMsg struct{}
