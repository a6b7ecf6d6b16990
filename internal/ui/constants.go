// Package ui holds layout constants and helpers shared by the panels.
package ui

const (
	// ScrollMargin is the number of rows kept visible around the focus.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for a panel title and its separator.
	HeaderHeight = 2

	// PanelOverhead is border plus header:
	// listHeight = panelHeight - PanelOverhead.
	PanelOverhead = BorderHeight + HeaderHeight

	// QueueWidthDivisor gives the queue panel 1/QueueWidthDivisor of the
	// width, next to the results panel.
	QueueWidthDivisor = 3

	// MinQueueWidth is the narrowest queue panel worth showing.
	MinQueueWidth = 24

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
