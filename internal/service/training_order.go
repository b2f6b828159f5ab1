package service

import (
	"context"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"hr_console/pkg/logger"
	"hr_console/pkg/monitoring"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// SortMaterials orders materials by their order field, keeping ties stable.
func SortMaterials(list []model.TrainingMaterial) []model.TrainingMaterial {
	out := append([]model.TrainingMaterial(nil), list...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// MoveMaterial moves one material a slot up or down and renumbers every order
// densely from zero. Moves past either edge leave the list unchanged and
// report moved=false.
func MoveMaterial(list []model.TrainingMaterial, id uint, dir Direction) (out []model.TrainingMaterial, moved bool, err error) {
	if dir != DirectionUp && dir != DirectionDown {
		return nil, false, util.ErrInvalidDirection
	}

	out = SortMaterials(list)
	idx := -1
	for i := range out {
		if out[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false, util.ErrMaterialNotFound
	}

	target := idx - 1
	if dir == DirectionDown {
		target = idx + 1
	}
	if target >= 0 && target < len(out) {
		out[idx], out[target] = out[target], out[idx]
		moved = true
	}

	for i := range out {
		out[i].Order = i
	}
	return out, moved, nil
}

// OrderPersister writes the final order of a business's materials.
type OrderPersister func(ctx context.Context, businessID uint, materials []model.TrainingMaterial) error

// FlushHook observes the outcome of one debounced flush.
type FlushHook func(businessID uint, operatorID uint, err error)

type pendingOrder struct {
	operatorID uint
	materials  []model.TrainingMaterial
	timer      *time.Timer
}

// Reorderer keeps the local material order per business and persists it once
// the operator stops moving items for the debounce delay.
type Reorderer struct {
	mu      sync.Mutex
	delay   time.Duration
	persist OrderPersister
	onFlush FlushHook
	pending map[uint]*pendingOrder
}

func NewReorderer(delay time.Duration, persist OrderPersister, onFlush FlushHook) *Reorderer {
	return &Reorderer{
		delay:   delay,
		persist: persist,
		onFlush: onFlush,
		pending: make(map[uint]*pendingOrder),
	}
}

// SetDelay changes the debounce delay for moves made afterwards.
func (r *Reorderer) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	r.mu.Lock()
	r.delay = d
	r.mu.Unlock()
}

// Local returns the unflushed order of a business, if any.
func (r *Reorderer) Local(businessID uint) ([]model.TrainingMaterial, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pending[businessID]
	if !ok {
		return nil, false
	}
	return append([]model.TrainingMaterial(nil), p.materials...), true
}

// Move applies a move to the local order and restarts the debounce timer.
// base is used when no local order exists yet.
func (r *Reorderer) Move(businessID, operatorID uint, base []model.TrainingMaterial, id uint, dir Direction) ([]model.TrainingMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := base
	if p, ok := r.pending[businessID]; ok {
		current = p.materials
	}

	next, moved, err := MoveMaterial(current, id, dir)
	if err != nil {
		return nil, err
	}
	if !moved {
		return next, nil
	}

	r.schedule(businessID, operatorID, next)
	return append([]model.TrainingMaterial(nil), next...), nil
}

// schedule replaces the pending order of a business with a fresh entry so a
// timer that already fired for the previous entry finds nothing to flush.
func (r *Reorderer) schedule(businessID, operatorID uint, materials []model.TrainingMaterial) {
	if old, ok := r.pending[businessID]; ok && old.timer != nil {
		old.timer.Stop()
	}
	p := &pendingOrder{operatorID: operatorID, materials: materials}
	p.timer = time.AfterFunc(r.delay, func() { r.flush(businessID, p) })
	r.pending[businessID] = p
}

// Reconcile folds a fresh server list into the pending order of a business.
// Materials missing from the server are dropped, new ones are appended in
// server order and every other field follows the server. It reports false
// when no order is pending.
func (r *Reorderer) Reconcile(businessID uint, server []model.TrainingMaterial) ([]model.TrainingMaterial, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pending[businessID]
	if !ok {
		return nil, false
	}

	byID := make(map[uint]model.TrainingMaterial, len(server))
	for _, m := range server {
		byID[m.ID] = m
	}
	next := make([]model.TrainingMaterial, 0, len(server))
	seen := make(map[uint]bool, len(server))
	for _, m := range p.materials {
		if fresh, ok := byID[m.ID]; ok {
			next = append(next, fresh)
			seen[m.ID] = true
		}
	}
	for _, m := range SortMaterials(server) {
		if !seen[m.ID] {
			next = append(next, m)
		}
	}
	for i := range next {
		next[i].Order = i
	}

	p.materials = next
	return append([]model.TrainingMaterial(nil), next...), true
}

// Remove drops one material from the pending order so a later flush never
// writes to it.
func (r *Reorderer) Remove(businessID, id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pending[businessID]
	if !ok {
		return
	}
	next := make([]model.TrainingMaterial, 0, len(p.materials))
	for _, m := range p.materials {
		if m.ID != id {
			m.Order = len(next)
			next = append(next, m)
		}
	}
	p.materials = next
}

func (r *Reorderer) flush(businessID uint, p *pendingOrder) {
	r.mu.Lock()
	if r.pending[businessID] != p {
		r.mu.Unlock()
		return
	}
	delete(r.pending, businessID)
	materials := p.materials
	operatorID := p.operatorID
	r.mu.Unlock()

	monitoring.ReorderFlushes.Inc()
	err := r.persist(context.Background(), businessID, materials)
	if err != nil {
		logger.Log.Error("persist training order failed",
			zap.Uint("business_id", businessID),
			zap.Error(err))
	}
	if r.onFlush != nil {
		r.onFlush(businessID, operatorID, err)
	}
}

// FlushAll persists every pending order right away.
func (r *Reorderer) FlushAll() {
	r.mu.Lock()
	due := make(map[uint]*pendingOrder, len(r.pending))
	for id, p := range r.pending {
		if p.timer.Stop() {
			due[id] = p
		}
	}
	r.mu.Unlock()

	for id, p := range due {
		r.flush(id, p)
	}
}
