package service

import (
	"hr_console/internal/model"
	"hr_console/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managers() []model.Manager {
	return []model.Manager{
		{ID: 1, Name: "Dana Default", Email: "dana@acme.com", IsDefault: true},
		{ID: 2, Name: "Omar", Email: "omar@acme.com"},
		{ID: 3, Name: "Lee", Email: "lee@acme.com"},
	}
}

func TestNewManagerSelection_SingleDefaultBecomesPrimary(t *testing.T) {
	sel := NewManagerSelection(9, managers())

	assert.Equal(t, []uint{1}, sel.Selected)
	require.NotNil(t, sel.PrimaryID)
	assert.Equal(t, uint(1), *sel.PrimaryID)
	assert.Equal(t, "Dana Default", sel.ManagerName)
	assert.Equal(t, "dana@acme.com", sel.ManagerEmail)
	assert.Equal(t, SelectionValid, sel.State())

	var form AssessmentForm
	sel.Apply(&form)
	assert.Equal(t, []uint{1}, form.ManagerIDs)
	require.NotNil(t, form.PrimaryManagerID)
	assert.Equal(t, uint(1), *form.PrimaryManagerID)
}

func TestNewManagerSelection_TwoDefaultsNeedPrimary(t *testing.T) {
	ms := managers()
	ms[1].IsDefault = true
	sel := NewManagerSelection(9, ms)

	assert.Equal(t, []uint{1, 2}, sel.Selected)
	assert.Nil(t, sel.PrimaryID)
	assert.Equal(t, SelectionPartial, sel.State())
	assert.ErrorIs(t, sel.Validate(), util.ErrNoPrimaryManager)
}

func TestManagerSelection_DefaultCannotBeUnchecked(t *testing.T) {
	sel := NewManagerSelection(9, managers())
	require.NoError(t, sel.Toggle(1))
	assert.True(t, sel.IsSelected(1))
	assert.Equal(t, uint(1), *sel.PrimaryID)
}

func TestManagerSelection_UncheckingPrimaryClearsIt(t *testing.T) {
	sel := NewManagerSelection(9, managers())
	require.NoError(t, sel.Toggle(2))
	require.NoError(t, sel.SetPrimary(2))
	assert.Equal(t, "Omar", sel.ManagerName)

	require.NoError(t, sel.Toggle(2))
	assert.False(t, sel.IsSelected(2))
	assert.Nil(t, sel.PrimaryID)
	assert.Empty(t, sel.ManagerName)
	assert.Empty(t, sel.ManagerEmail)
	assert.Equal(t, SelectionPartial, sel.State())
}

func TestManagerSelection_WithoutDefaults(t *testing.T) {
	ms := managers()
	ms[0].IsDefault = false
	sel := NewManagerSelection(9, ms)

	assert.Equal(t, SelectionUnselected, sel.State())
	assert.ErrorIs(t, sel.Validate(), util.ErrNoManagersSelected)

	require.NoError(t, sel.Toggle(3))
	assert.Nil(t, sel.PrimaryID)
	assert.ErrorIs(t, sel.SetPrimary(2), util.ErrManagerNotSelected)
	require.NoError(t, sel.SetPrimary(3))
	assert.NoError(t, sel.Validate())
}

func TestManagerSelection_UnknownManager(t *testing.T) {
	sel := NewManagerSelection(9, managers())
	assert.ErrorIs(t, sel.Toggle(42), util.ErrUnknownManager)
	assert.ErrorIs(t, sel.SetPrimary(42), util.ErrUnknownManager)
}

func TestResumeManagerSelection(t *testing.T) {
	primary := uint(3)
	sel := ResumeManagerSelection(9, managers(), model.Assessment{
		ManagerIDs:       []uint{3, 77},
		PrimaryManagerID: &primary,
	})

	assert.Equal(t, []uint{1, 3}, sel.Selected)
	assert.Equal(t, uint(3), *sel.PrimaryID)
	assert.Equal(t, "lee@acme.com", sel.ManagerEmail)
}
