package service

import (
	"encoding/json"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentService_EmptySelectionMakesNoCalls(t *testing.T) {
	fake, client := newFakePlatform(t)
	svc := NewAssessmentService(client, newTestActivity().Activity, &memDrafts{}, time.UTC)

	_, err := svc.Create(operatorCtx(1), 3, AssessmentForm{CandidateName: "Ada", CandidateEmail: "ada@x.com"}, "")
	assert.ErrorIs(t, err, util.ErrNoManagersSelected)
	assert.Equal(t, 0, fake.total())
}

func TestAssessmentService_CreateFromDraft(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("GET /api/businesses/3/managers/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"managers": managers()})
	})
	var sent platform.AssessmentInput
	fake.handle("POST /api/businesses/3/create-assessment/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		writeJSON(w, http.StatusCreated, model.Assessment{ID: 50})
	})
	fake.handle("GET /api/businesses/3/assessments/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": []model.Assessment{
			{ID: 50, AssessmentType: model.AssessmentStandard},
			{ID: 51, AssessmentType: model.AssessmentBenchmark},
		}})
	})
	drafts := &memDrafts{}
	svc := NewAssessmentService(client, newTestActivity().Activity, drafts, time.UTC)
	ctx := operatorCtx(1)

	draft, err := svc.StartSelection(ctx, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, SelectionValid, draft.State)

	draft, err = svc.ToggleManager(ctx, draft.ID, 2)
	require.NoError(t, err)
	draft, err = svc.SetPrimary(ctx, draft.ID, 2)
	require.NoError(t, err)

	list, err := svc.Create(ctx, 3, AssessmentForm{CandidateName: "Ada", CandidateEmail: "ada@x.com"}, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{50}, ids(list))

	assert.Equal(t, []uint{1, 2}, sent.ManagerIDs)
	require.NotNil(t, sent.PrimaryManagerID)
	assert.Equal(t, uint(2), *sent.PrimaryManagerID)
	assert.Equal(t, "omar@acme.com", sent.ManagerEmail)

	_, err = svc.Selection(ctx, draft.ID)
	assert.ErrorIs(t, err, util.ErrSelectionNotFound)
}

func TestAssessmentService_DraftsAreScopedToOperator(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("GET /api/businesses/3/managers/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"managers": managers()})
	})
	svc := NewAssessmentService(client, nil, &memDrafts{}, time.UTC)

	draft, err := svc.StartSelection(operatorCtx(1), 3, 0)
	require.NoError(t, err)
	_, err = svc.Selection(operatorCtx(2), draft.ID)
	assert.ErrorIs(t, err, util.ErrSelectionNotFound)
}

func TestAssessmentService_FormSelectionMustHavePrimary(t *testing.T) {
	fake, client := newFakePlatform(t)
	ms := managers()
	ms[0].IsDefault = false
	fake.handle("GET /api/businesses/3/managers/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"managers": ms})
	})
	svc := NewAssessmentService(client, nil, &memDrafts{}, time.UTC)

	_, err := svc.Create(operatorCtx(1), 3, AssessmentForm{
		CandidateName:  "Ada",
		CandidateEmail: "ada@x.com",
		ManagerIDs:     []uint{2, 3},
	}, "")
	assert.ErrorIs(t, err, util.ErrNoPrimaryManager)
	assert.Equal(t, 0, fake.count("POST"))
}

func TestAssessmentService_ListReportsEmptyState(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("GET /api/businesses/3/assessments/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": []model.Assessment{
			{ID: 1, AssessmentType: model.AssessmentStandard, Completed: false, CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		}})
	})
	svc := NewAssessmentService(client, nil, &memDrafts{}, time.UTC)

	res, err := svc.List(operatorCtx(1), 3, AssessmentFilter{StatusEnabled: true, Status: util.StatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, res.Assessments)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, EmptyNoMatches, res.EmptyState)
}

func TestAssessmentService_DraftBoundToBusinessAndAssessment(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("GET /api/businesses/3/managers/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"managers": managers()})
	})
	fake.handle("GET /api/businesses/3/assessments/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": []model.Assessment{
			{ID: 50, AssessmentType: model.AssessmentStandard, ManagerIDs: []uint{1}},
		}})
	})
	var updated platform.AssessmentInput
	fake.handle("PUT /api/assessments/50/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&updated))
		w.WriteHeader(http.StatusOK)
	})
	svc := NewAssessmentService(client, newTestActivity().Activity, &memDrafts{}, time.UTC)
	ctx := operatorCtx(1)
	form := AssessmentForm{CandidateName: "Ada", CandidateEmail: "ada@x.com"}

	fresh, err := svc.StartSelection(ctx, 3, 0)
	require.NoError(t, err)

	_, err = svc.Create(ctx, 4, form, fresh.ID)
	assert.ErrorIs(t, err, util.ErrSelectionNotFound)
	_, err = svc.Update(ctx, 3, 50, form, fresh.ID)
	assert.ErrorIs(t, err, util.ErrSelectionNotFound)
	assert.Equal(t, 0, fake.count("POST"))
	assert.Equal(t, 0, fake.count("PUT"))

	editing, err := svc.StartSelection(ctx, 3, 50)
	require.NoError(t, err)
	_, err = svc.Update(ctx, 3, 51, form, editing.ID)
	assert.ErrorIs(t, err, util.ErrSelectionNotFound)

	_, err = svc.Update(ctx, 3, 50, form, editing.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, updated.ManagerIDs)
}
