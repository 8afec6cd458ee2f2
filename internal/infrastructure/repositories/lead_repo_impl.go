package repositories

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"vehicle-finance.backend/internal/domain/entities"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/infrastructure/localstore"
	"vehicle-finance.backend/pkg/logger"
)

const (
	caseIDPrefix = "MF"
	caseIDBase   = 6001
)

// LeadRepositoryImpl holds the authoritative in-memory collection and
// mirrors every mutation to the local store before returning.
type LeadRepositoryImpl struct {
	mu    sync.Mutex
	store *localstore.Store
	leads []*entities.Lead
	now   func() time.Time
}

// NewLeadRepository loads the persisted collection once at startup.
// There is no teardown: the store is rewritten on every mutation.
func NewLeadRepository(ctx context.Context, store *localstore.Store) *LeadRepositoryImpl {
	return &LeadRepositoryImpl{
		store: store,
		leads: store.Load(ctx),
		now:   time.Now,
	}
}

// nextID derives the next case id from the numeric suffix of the last
// element, not the max across the collection. The collection is
// append-only with no deletion path, so insertion order is id order.
func (r *LeadRepositoryImpl) nextID() string {
	if len(r.leads) == 0 {
		return caseIDPrefix + strconv.Itoa(caseIDBase)
	}
	last := r.leads[len(r.leads)-1].ID
	num, err := strconv.Atoi(strings.TrimPrefix(last, caseIDPrefix))
	if err != nil {
		logger.Warn(context.Background(), "unparseable last case id, restarting sequence",
			zap.String("id", last))
		return caseIDPrefix + strconv.Itoa(caseIDBase)
	}
	return caseIDPrefix + strconv.Itoa(num+1)
}

func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *entities.Lead) (*entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *lead
	stored.ID = r.nextID()
	stored.Status = entities.StatusNew
	stored.CreatedAt = r.now().UTC()

	r.leads = append(r.leads, &stored)
	if err := r.store.Save(ctx, r.leads); err != nil {
		r.leads = r.leads[:len(r.leads)-1]
		return nil, err
	}

	result := stored
	return &result, nil
}

func (r *LeadRepositoryImpl) Update(ctx context.Context, id string, update entities.LeadUpdate) (*entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domainerrors.ErrNotFound
	}

	// Shallow merge: a present field fully replaces the prior value,
	// an absent field is untouched.
	merged := *r.leads[idx]
	if update.Verification != nil {
		v := *update.Verification
		merged.Verification = &v
	}
	if update.Approval != nil {
		a := *update.Approval
		merged.Approval = &a
	}
	if update.Status != nil {
		merged.Status = *update.Status
	}

	prior := r.leads[idx]
	r.leads[idx] = &merged
	if err := r.store.Save(ctx, r.leads); err != nil {
		r.leads[idx] = prior
		return nil, err
	}

	result := merged
	return &result, nil
}

func (r *LeadRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domainerrors.ErrNotFound
	}
	lead := *r.leads[idx]
	return &lead, nil
}

func (r *LeadRepositoryImpl) List(ctx context.Context) ([]*entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entities.Lead, len(r.leads))
	for i, l := range r.leads {
		lead := *l
		out[i] = &lead
	}
	return out, nil
}

func (r *LeadRepositoryImpl) indexOf(id string) int {
	for i, l := range r.leads {
		if l.ID == id {
			return i
		}
	}
	return -1
}
