package usecases

import (
	"context"
	"sync"

	"vehicle-finance.backend/internal/domain/entities"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/domain/repositories"
)

// View names one of the four mutually exclusive screens
type View string

const (
	ViewList    View = "list"
	ViewCreate  View = "create"
	ViewProcess View = "process"
	ViewPrint   View = "print"
)

// ViewState is the resolved navigation state. Lead is populated for
// process/print when the selected id resolves; otherwise it is nil and
// the client renders nothing for that view.
type ViewState struct {
	View View           `json:"view"`
	Lead *entities.Lead `json:"lead,omitempty"`
}

// ViewRouter holds the single-selection navigation state. There is no
// history stack: Back always returns to the list.
type ViewRouter struct {
	mu     sync.Mutex
	repo   repositories.LeadRepository
	view   View
	leadID string
}

func NewViewRouter(repo repositories.LeadRepository) *ViewRouter {
	return &ViewRouter{repo: repo, view: ViewList}
}

// Open switches to the given view. process and print carry a lead id;
// an unresolvable id still enters the view but resolves to an empty
// render rather than an error.
func (r *ViewRouter) Open(ctx context.Context, view View, leadID string) (ViewState, error) {
	switch view {
	case ViewList, ViewCreate:
		leadID = ""
	case ViewProcess, ViewPrint:
	default:
		return ViewState{}, domainerrors.BadRequest("unknown view: " + string(view))
	}

	r.mu.Lock()
	r.view = view
	r.leadID = leadID
	r.mu.Unlock()

	return r.Current(ctx), nil
}

// Back returns to the list view
func (r *ViewRouter) Back(ctx context.Context) ViewState {
	r.mu.Lock()
	r.view = ViewList
	r.leadID = ""
	r.mu.Unlock()
	return r.Current(ctx)
}

// Current resolves the selected lead on every read so a processed
// lead's latest state is always shown.
func (r *ViewRouter) Current(ctx context.Context) ViewState {
	r.mu.Lock()
	view, leadID := r.view, r.leadID
	r.mu.Unlock()

	state := ViewState{View: view}
	if leadID != "" {
		if lead, err := r.repo.GetByID(ctx, leadID); err == nil {
			state.Lead = lead
		}
	}
	return state
}
