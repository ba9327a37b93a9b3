package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/contract"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Factory struct {
	store *Store
}

func NewFactory(store *Store) unitofwork.RepositoryFactory {
	return &Factory{store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork mirrors the transactional contract: Begin snapshots the
// match table, Rollback restores it, so a failed batch leaves no rows.
type UnitOfWork struct {
	store    *Store
	inTx     bool
	snapshot int
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return fmt.Errorf("transaction already started")
	}
	u.store.mu.Lock()
	u.snapshot = len(u.store.matches)
	u.store.mu.Unlock()
	u.inTx = true
	return nil
}

func (u *UnitOfWork) Commit() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to commit")
	}
	u.inTx = false
	return nil
}

func (u *UnitOfWork) Rollback() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to rollback")
	}
	u.store.mu.Lock()
	u.store.matches = u.store.matches[:u.snapshot]
	u.store.mu.Unlock()
	u.inTx = false
	return nil
}

func (u *UnitOfWork) FarmerRepository() contract.FarmerRepository {
	return &farmerRepository{store: u.store}
}

func (u *UnitOfWork) SchemeRepository() contract.SchemeRepository {
	return &schemeRepository{store: u.store}
}

func (u *UnitOfWork) SchemeMatchRepository() contract.SchemeMatchRepository {
	return &schemeMatchRepository{store: u.store}
}

type farmerRepository struct {
	store *Store
}

func (r *farmerRepository) FindById(ctx context.Context, farmerId string) (*entity.Farmer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.farmers[farmerId], nil
}

func (r *farmerRepository) FindContact(ctx context.Context, farmerId string) (*entity.FarmerContact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.contacts[farmerId], nil
}

func (r *farmerRepository) FindPlots(ctx context.Context, farmerId string) ([]*entity.FarmerPlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]*entity.FarmerPlot(nil), r.store.plots[farmerId]...), nil
}

func (r *farmerRepository) FindCrops(ctx context.Context, farmerId string) ([]*entity.PlotCrop, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]*entity.PlotCrop(nil), r.store.crops[farmerId]...), nil
}

func (r *farmerRepository) FindLogs(ctx context.Context, farmerId string) ([]*entity.ActivityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	logs := append([]*entity.ActivityLog(nil), r.store.logs[farmerId]...)
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.Before(logs[j].CreatedAt)
	})
	return logs, nil
}

type schemeRepository struct {
	store *Store
}

func (r *schemeRepository) Create(ctx context.Context, scheme *entity.Scheme) error {
	r.store.AddScheme(scheme)
	return nil
}

func (r *schemeRepository) Upsert(ctx context.Context, scheme *entity.Scheme) error {
	r.store.AddScheme(scheme)
	return nil
}

func (r *schemeRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Scheme, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.schemes[id], nil
}

func (r *schemeRepository) FindByNameLike(ctx context.Context, name string) ([]*entity.Scheme, error) {
	return r.filter(func(s *entity.Scheme) bool {
		return containsFold(s.SchemeName, name)
	}), nil
}

func (r *schemeRepository) FindByMinistryLike(ctx context.Context, ministry string) ([]*entity.Scheme, error) {
	return r.filter(func(s *entity.Scheme) bool {
		return containsFold(s.Ministry, ministry)
	}), nil
}

func (r *schemeRepository) FindByStateLike(ctx context.Context, state string) ([]*entity.Scheme, error) {
	return r.filter(func(s *entity.Scheme) bool {
		return containsFold(s.State, state)
	}), nil
}

func (r *schemeRepository) FindAll(ctx context.Context) ([]*entity.Scheme, error) {
	return r.filter(func(*entity.Scheme) bool { return true }), nil
}

func (r *schemeRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.schemes)), nil
}

func (r *schemeRepository) filter(keep func(*entity.Scheme) bool) []*entity.Scheme {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Scheme, 0)
	for _, s := range r.store.schemes {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SchemeName < out[j].SchemeName
	})
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type schemeMatchRepository struct {
	store *Store
}

func (r *schemeMatchRepository) Insert(ctx context.Context, match *entity.SchemeMatch) error {
	if r.store.InsertMatchErr != nil {
		if err := r.store.InsertMatchErr(match); err != nil {
			return err
		}
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if match.Id == uuid.Nil {
		match.Id = uuid.New()
	}
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now()
	}
	r.store.matches = append(r.store.matches, match)
	return nil
}

func (r *schemeMatchRepository) FindByFarmerId(ctx context.Context, farmerId string) ([]*entity.SchemeMatch, error) {
	return r.store.matchesByFarmer(farmerId), nil
}
