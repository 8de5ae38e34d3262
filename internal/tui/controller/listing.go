package controller

import (
	"podpanel/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// listingSlot keeps at most one runtime listing running. The panel asks for a
// listing on every event, including the completion of the previous listing;
// requests that arrive while one is running are folded into the newest id.
type listingSlot struct {
	inFlight bool
	// pending is the newest request id waiting for the slot, 0 when none.
	pending uint64
	// settling is set while a listing completion is dispatched. The listing
	// it asks for waits for the next tick or input instead of running at once.
	settling bool
}

func (a *AppModel) requestListing(id uint64) tea.Cmd {
	if a.listing.inFlight || a.listing.settling {
		if id > a.listing.pending {
			a.listing.pending = id
		}
		return nil
	}
	return a.startListing(id)
}

func (a *AppModel) startListing(id uint64) tea.Cmd {
	a.listing.inFlight = true
	a.listing.pending = 0
	return runCommandCmd(a.runner, model.CommandResultEvent{Kind: model.CommandList, RequestID: id}, a.runner.ListArgs())
}

// completeListing frees the slot, hands the result to the panel and starts the
// listing that was queued behind it, if any.
func (a *AppModel) completeListing(ev model.CommandResultEvent) tea.Cmd {
	a.listing.inFlight = false
	queued := a.listing.pending != 0

	a.listing.settling = true
	cmd := a.dispatch(ev)
	a.listing.settling = false

	if queued {
		LogDebug(hostSubsystem, "Running queued listing #%d", a.listing.pending)
		cmd = tea.Batch(cmd, a.startListing(a.listing.pending))
	}
	return cmd
}
