package service

import (
	"context"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memVisibility struct {
	saved map[uint]map[string]bool
	saves int
}

func (m *memVisibility) Load(operatorID uint) (map[string]bool, error) {
	out := map[string]bool{}
	for k, v := range m.saved[operatorID] {
		out[k] = v
	}
	return out, nil
}

func (m *memVisibility) Save(operatorID uint, moduleID string, visible bool) error {
	if m.saved == nil {
		m.saved = map[uint]map[string]bool{}
	}
	if m.saved[operatorID] == nil {
		m.saved[operatorID] = map[string]bool{}
	}
	m.saved[operatorID][moduleID] = visible
	m.saves++
	return nil
}

func TestModuleVisibility_DefaultsAllVisible(t *testing.T) {
	svc := NewModuleVisibilityService(&memVisibility{}, nil)
	got, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, len(model.AllModules))
	for _, id := range model.AllModules {
		assert.True(t, got[id], id)
	}
}

func TestModuleVisibility_ToggleSavesEachChange(t *testing.T) {
	store := &memVisibility{}
	svc := NewModuleVisibilityService(store, nil)
	ctx := context.Background()

	got, err := svc.Toggle(ctx, 1, model.ModuleBenchmark)
	require.NoError(t, err)
	assert.False(t, got[model.ModuleBenchmark])
	assert.Equal(t, 1, store.saves)

	got, err = svc.Toggle(ctx, 1, model.ModuleBenchmark)
	require.NoError(t, err)
	assert.True(t, got[model.ModuleBenchmark])
	assert.Equal(t, 2, store.saves)

	other, err := svc.Load(ctx, 2)
	require.NoError(t, err)
	assert.True(t, other[model.ModuleBenchmark])
}

func TestModuleVisibility_ConfiguredDefaults(t *testing.T) {
	store := &memVisibility{}
	svc := NewModuleVisibilityService(store, []string{model.ModuleTraining})
	got, err := svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, got[model.ModuleTraining])

	_, err = svc.Set(context.Background(), 1, model.ModuleTraining, true)
	require.NoError(t, err)
	svc.SetDefaults(nil)
	got, err = svc.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got[model.ModuleTraining])
}

func TestModuleVisibility_UnknownModule(t *testing.T) {
	svc := NewModuleVisibilityService(&memVisibility{}, nil)
	_, err := svc.Toggle(context.Background(), 1, "reportsModule")
	assert.ErrorIs(t, err, util.ErrUnknownModule)
}
