package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
)

type GoalEventRepository struct {
	store *Store
}

func (r *GoalEventRepository) Create(ctx context.Context, goal models.GoalEvent) (*models.GoalEvent, error) {
	err := r.store.access(ctx, func(data *state) error {
		if _, ok := data.fixtures[goal.FixtureID]; !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist", goal.FixtureID))
		}

		goal.ID = r.store.nextID(data)
		goal.CreatedAt = r.store.clock.Now()
		data.goals[goal.ID] = goal

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create goal event: %w", err)
	}

	return &goal, nil
}

func (r *GoalEventRepository) Get(ctx context.Context, id uint) (*models.GoalEvent, error) {
	return get(ctx, r.store, "goal event", id, func(data *state) map[uint]models.GoalEvent { return data.goals })
}

func (r *GoalEventRepository) Delete(ctx context.Context, id uint) error {
	return remove(ctx, r.store, "goal event", id, func(data *state) map[uint]models.GoalEvent { return data.goals })
}

func (r *GoalEventRepository) ListByFixture(ctx context.Context, fixtureID uint) ([]models.GoalEvent, error) {
	goals := list(ctx, r.store, func(data *state) map[uint]models.GoalEvent { return data.goals }, func(g models.GoalEvent) bool {
		return g.FixtureID == fixtureID
	})

	slices.SortFunc(goals, func(a, b models.GoalEvent) int {
		return compareEvents(a.Quarter, a.Minute, a.ID, b.Quarter, b.Minute, b.ID)
	})

	return goals, nil
}

type CardEventRepository struct {
	store *Store
}

func (r *CardEventRepository) Create(ctx context.Context, card models.CardEvent) (*models.CardEvent, error) {
	err := r.store.access(ctx, func(data *state) error {
		if _, ok := data.fixtures[card.FixtureID]; !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist", card.FixtureID))
		}

		card.ID = r.store.nextID(data)
		card.CreatedAt = r.store.clock.Now()
		data.cards[card.ID] = card

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create card event: %w", err)
	}

	return &card, nil
}

func (r *CardEventRepository) Get(ctx context.Context, id uint) (*models.CardEvent, error) {
	return get(ctx, r.store, "card event", id, func(data *state) map[uint]models.CardEvent { return data.cards })
}

func (r *CardEventRepository) Delete(ctx context.Context, id uint) error {
	return remove(ctx, r.store, "card event", id, func(data *state) map[uint]models.CardEvent { return data.cards })
}

func (r *CardEventRepository) ListByFixture(ctx context.Context, fixtureID uint) ([]models.CardEvent, error) {
	cards := list(ctx, r.store, func(data *state) map[uint]models.CardEvent { return data.cards }, func(c models.CardEvent) bool {
		return c.FixtureID == fixtureID
	})

	slices.SortFunc(cards, func(a, b models.CardEvent) int {
		return compareEvents(a.Quarter, a.Minute, a.ID, b.Quarter, b.Minute, b.ID)
	})

	return cards, nil
}

type SubstitutionEventRepository struct {
	store *Store
}

func (r *SubstitutionEventRepository) Create(ctx context.Context, substitution models.SubstitutionEvent) (*models.SubstitutionEvent, error) {
	err := r.store.access(ctx, func(data *state) error {
		if _, ok := data.fixtures[substitution.FixtureID]; !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("fixture %d does not exist", substitution.FixtureID))
		}

		substitution.ID = r.store.nextID(data)
		substitution.CreatedAt = r.store.clock.Now()
		data.substitutions[substitution.ID] = substitution

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create substitution event: %w", err)
	}

	return &substitution, nil
}

func (r *SubstitutionEventRepository) Get(ctx context.Context, id uint) (*models.SubstitutionEvent, error) {
	return get(ctx, r.store, "substitution event", id, func(data *state) map[uint]models.SubstitutionEvent { return data.substitutions })
}

func (r *SubstitutionEventRepository) Delete(ctx context.Context, id uint) error {
	return remove(ctx, r.store, "substitution event", id, func(data *state) map[uint]models.SubstitutionEvent { return data.substitutions })
}

func (r *SubstitutionEventRepository) ListByFixture(ctx context.Context, fixtureID uint) ([]models.SubstitutionEvent, error) {
	substitutions := list(ctx, r.store, func(data *state) map[uint]models.SubstitutionEvent { return data.substitutions }, func(s models.SubstitutionEvent) bool {
		return s.FixtureID == fixtureID
	})

	slices.SortFunc(substitutions, func(a, b models.SubstitutionEvent) int {
		return compareEvents(a.Quarter, a.Minute, a.ID, b.Quarter, b.Minute, b.ID)
	})

	return substitutions, nil
}

func get[T any](ctx context.Context, store *Store, what string, id uint, table func(*state) map[uint]T) (*T, error) {
	var found T
	var ok bool

	_ = store.access(ctx, func(data *state) error {
		found, ok = table(data)[id]
		return nil
	})

	if !ok {
		return nil, models.NewResourceNotFoundError(fmt.Errorf("%s with id %d not found", what, id))
	}

	return &found, nil
}

func remove[T any](ctx context.Context, store *Store, what string, id uint, table func(*state) map[uint]T) error {
	return store.access(ctx, func(data *state) error {
		items := table(data)
		if _, ok := items[id]; !ok {
			return models.NewResourceNotFoundError(fmt.Errorf("%s with id %d not found", what, id))
		}

		delete(items, id)

		return nil
	})
}

func list[T any](ctx context.Context, store *Store, table func(*state) map[uint]T, match func(T) bool) []T {
	items := []T{}

	_ = store.access(ctx, func(data *state) error {
		for _, item := range table(data) {
			if match(item) {
				items = append(items, item)
			}
		}

		return nil
	})

	return items
}

// compareEvents orders by quarter, then minute with unknown minutes last, then insertion.
func compareEvents(quarterA int, minuteA *int, idA uint, quarterB int, minuteB *int, idB uint) int {
	if c := cmp.Compare(quarterA, quarterB); c != 0 {
		return c
	}

	switch {
	case minuteA != nil && minuteB == nil:
		return -1
	case minuteA == nil && minuteB != nil:
		return 1
	case minuteA != nil && minuteB != nil:
		if c := cmp.Compare(*minuteA, *minuteB); c != 0 {
			return c
		}
	}

	return cmp.Compare(idA, idB)
}
