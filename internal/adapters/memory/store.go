package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/jonboulle/clockwork"
)

type txKey struct{}

type state struct {
	fixtures      map[uint]models.Fixture
	goals         map[uint]models.GoalEvent
	cards         map[uint]models.CardEvent
	substitutions map[uint]models.SubstitutionEvent
	referees      map[uint]models.RefereeAssignment

	// team id -> user id -> admin flag
	members   map[uint]map[uint]bool
	attendees map[uint]map[uint]struct{}

	lastID uint
}

func newState() state {
	return state{
		fixtures:      map[uint]models.Fixture{},
		goals:         map[uint]models.GoalEvent{},
		cards:         map[uint]models.CardEvent{},
		substitutions: map[uint]models.SubstitutionEvent{},
		referees:      map[uint]models.RefereeAssignment{},
		members:       map[uint]map[uint]bool{},
		attendees:     map[uint]map[uint]struct{}{},
	}
}

func (s state) clone() state {
	cloned := state{
		fixtures:      maps.Clone(s.fixtures),
		goals:         maps.Clone(s.goals),
		cards:         maps.Clone(s.cards),
		substitutions: maps.Clone(s.substitutions),
		referees:      maps.Clone(s.referees),
		members:       make(map[uint]map[uint]bool, len(s.members)),
		attendees:     make(map[uint]map[uint]struct{}, len(s.attendees)),
		lastID:        s.lastID,
	}

	for teamID, users := range s.members {
		cloned.members[teamID] = maps.Clone(users)
	}

	for fixtureID, users := range s.attendees {
		cloned.attendees[fixtureID] = maps.Clone(users)
	}

	return cloned
}

// Store keeps every table in process memory. Transactions are serialized by one mutex and roll back to a snapshot
// when the function fails.
type Store struct {
	mu    sync.Mutex
	data  state
	clock clockwork.Clock
}

func NewStore(clock clockwork.Clock) *Store {
	return &Store{data: newState(), clock: clock}
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.data = snapshot
		return err
	}

	return nil
}

func (s *Store) Fixtures() *FixtureRepository {
	return &FixtureRepository{store: s}
}

func (s *Store) Goals() *GoalEventRepository {
	return &GoalEventRepository{store: s}
}

func (s *Store) Cards() *CardEventRepository {
	return &CardEventRepository{store: s}
}

func (s *Store) Substitutions() *SubstitutionEventRepository {
	return &SubstitutionEventRepository{store: s}
}

func (s *Store) Referees() *RefereeRepository {
	return &RefereeRepository{store: s}
}

func (s *Store) Roster() *RosterRepository {
	return &RosterRepository{store: s}
}

// access runs fn against the data. Inside a transaction the mutex is already held.
func (s *Store) access(ctx context.Context, fn func(data *state) error) error {
	if !inTransaction(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn(&s.data)
}

func (s *Store) nextID(data *state) uint {
	data.lastID++
	return data.lastID
}

func inTransaction(ctx context.Context) bool {
	marked, _ := ctx.Value(txKey{}).(bool)
	return marked
}
