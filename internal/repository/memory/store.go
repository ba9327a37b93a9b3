package memory

import (
	"sort"
	"sync"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"

	"github.com/google/uuid"
)

// Store is an in-memory stand-in for the relational store. It backs the
// memory unit of work used by tests and local development.
type Store struct {
	mu sync.RWMutex

	farmers  map[string]*entity.Farmer
	contacts map[string]*entity.FarmerContact
	plots    map[string][]*entity.FarmerPlot
	crops    map[string][]*entity.PlotCrop
	logs     map[string][]*entity.ActivityLog
	schemes  map[uuid.UUID]*entity.Scheme
	matches  []*entity.SchemeMatch

	// InsertMatchErr, when set, is consulted before every match insert.
	// Tests use it to inject write failures.
	InsertMatchErr func(match *entity.SchemeMatch) error
}

func NewStore() *Store {
	return &Store{
		farmers:  make(map[string]*entity.Farmer),
		contacts: make(map[string]*entity.FarmerContact),
		plots:    make(map[string][]*entity.FarmerPlot),
		crops:    make(map[string][]*entity.PlotCrop),
		logs:     make(map[string][]*entity.ActivityLog),
		schemes:  make(map[uuid.UUID]*entity.Scheme),
	}
}

func (s *Store) AddFarmer(f *entity.Farmer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farmers[f.Id] = f
}

func (s *Store) AddContact(c *entity.FarmerContact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[c.FarmerId] = c
}

func (s *Store) AddPlot(p *entity.FarmerPlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plots[p.FarmerId] = append(s.plots[p.FarmerId], p)
}

func (s *Store) AddCrop(c *entity.PlotCrop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crops[c.FarmerId] = append(s.crops[c.FarmerId], c)
}

func (s *Store) AddLog(l *entity.ActivityLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[l.FarmerId] = append(s.logs[l.FarmerId], l)
}

func (s *Store) AddScheme(sc *entity.Scheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sc.Id == uuid.Nil {
		sc.Id = uuid.New()
	}
	s.schemes[sc.Id] = sc
}

// Matches returns a copy of all persisted matches.
func (s *Store) Matches() []*entity.SchemeMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.SchemeMatch, len(s.matches))
	copy(out, s.matches)
	return out
}

func (s *Store) matchesByFarmer(farmerId string) []*entity.SchemeMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.SchemeMatch
	for _, m := range s.matches {
		if m.FarmerId == farmerId {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
