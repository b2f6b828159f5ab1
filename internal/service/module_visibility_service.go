package service

import (
	"context"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"sync"
)

// ModuleVisibilityStore persists per-operator module visibility. Load returns
// only the modules the operator changed.
type ModuleVisibilityStore interface {
	Load(operatorID uint) (map[string]bool, error)
	Save(operatorID uint, moduleID string, visible bool) error
}

type ModuleVisibilityService struct {
	Store ModuleVisibilityStore

	mu     sync.RWMutex
	hidden map[string]bool
}

// NewModuleVisibilityService shows every module by default except hidden.
func NewModuleVisibilityService(store ModuleVisibilityStore, hidden []string) *ModuleVisibilityService {
	s := &ModuleVisibilityService{Store: store}
	s.SetDefaults(hidden)
	return s
}

// SetDefaults replaces the modules hidden for operators without a preference.
func (s *ModuleVisibilityService) SetDefaults(hidden []string) {
	m := make(map[string]bool, len(hidden))
	for _, id := range hidden {
		m[id] = true
	}
	s.mu.Lock()
	s.hidden = m
	s.mu.Unlock()
}

func (s *ModuleVisibilityService) defaults() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(model.AllModules))
	for _, id := range model.AllModules {
		out[id] = !s.hidden[id]
	}
	return out
}

// Load returns the visibility of every module for the operator.
func (s *ModuleVisibilityService) Load(ctx context.Context, operatorID uint) (map[string]bool, error) {
	out := s.defaults()
	stored, err := s.Store.Load(operatorID)
	if err != nil {
		return nil, err
	}
	for id, visible := range stored {
		if _, known := out[id]; known {
			out[id] = visible
		}
	}
	return out, nil
}

// Set changes one module and saves it immediately.
func (s *ModuleVisibilityService) Set(ctx context.Context, operatorID uint, moduleID string, visible bool) (map[string]bool, error) {
	if !isModule(moduleID) {
		return nil, util.ErrUnknownModule
	}
	if err := s.Store.Save(operatorID, moduleID, visible); err != nil {
		return nil, err
	}
	return s.Load(ctx, operatorID)
}

// Toggle flips one module.
func (s *ModuleVisibilityService) Toggle(ctx context.Context, operatorID uint, moduleID string) (map[string]bool, error) {
	if !isModule(moduleID) {
		return nil, util.ErrUnknownModule
	}
	current, err := s.Load(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return s.Set(ctx, operatorID, moduleID, !current[moduleID])
}

func isModule(id string) bool {
	for _, m := range model.AllModules {
		if m == id {
			return true
		}
	}
	return false
}
