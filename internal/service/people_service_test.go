package service

import (
	"context"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessScopedMutationsRefetchDetails(t *testing.T) {
	active := false
	tests := []struct {
		name   string
		route  string
		status int
		action string
		run    func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error)
	}{
		{
			name: "create hr user", route: "POST /api/hr-users/", status: http.StatusCreated, action: "hr_user.create",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewHRUserService(client, act).Create(ctx, 5, HRUserForm{Email: "hr@acme.com", FirstName: "Hana", LastName: "Roe", Password: "s3cret!!"})
			},
		},
		{
			name: "update hr user", route: "PUT /api/hr-users/8/", status: http.StatusOK, action: "hr_user.update",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewHRUserService(client, act).Update(ctx, 5, 8, HRUserForm{Email: "hr@acme.com", FirstName: "Hana", LastName: "Roe", IsActive: &active})
			},
		},
		{
			name: "delete hr user", route: "DELETE /api/hr-users/8/", status: http.StatusNoContent, action: "hr_user.delete",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewHRUserService(client, act).Delete(ctx, 5, 8)
			},
		},
		{
			name: "create manager", route: "POST /api/businesses/5/managers/", status: http.StatusCreated, action: "manager.create",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewManagerService(client, act).Create(ctx, 5, ManagerForm{Name: "Omar", Email: "omar@acme.com"})
			},
		},
		{
			name: "update manager", route: "PUT /api/managers/2/", status: http.StatusOK, action: "manager.update",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewManagerService(client, act).Update(ctx, 5, 2, ManagerForm{Name: "Omar", Email: "omar@acme.com", IsDefault: true})
			},
		},
		{
			name: "delete manager", route: "DELETE /api/managers/2/", status: http.StatusNoContent, action: "manager.delete",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewManagerService(client, act).Delete(ctx, 5, 2)
			},
		},
		{
			name: "update question pair", route: "PUT /api/question-pairs/4/", status: http.StatusOK, action: "question_pair.update",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewQuestionPairService(client, act).Update(ctx, 5, 4, QuestionPairForm{StatementA: "I plan", StatementB: "I adapt"})
			},
		},
		{
			name: "delete question pair", route: "DELETE /api/question-pairs/4/", status: http.StatusNoContent, action: "question_pair.delete",
			run: func(ctx context.Context, client *platform.Client, act *Activity) (*model.BusinessDetails, error) {
				return NewQuestionPairService(client, act).Delete(ctx, 5, 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, client := newFakePlatform(t)
			fake.handle(tt.route, func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusNoContent {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(w, tt.status, map[string]interface{}{"id": 1})
			})
			fake.handle("GET /api/businesses/5/details/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, model.BusinessDetails{Business: model.Business{ID: 5, Name: "Acme"}})
			})
			act := newTestActivity()

			details, err := tt.run(operatorCtx(1), client, act.Activity)
			require.NoError(t, err)
			require.NotNil(t, details)
			assert.Equal(t, "Acme", details.Business.Name)
			assert.Equal(t, 2, fake.total())
			assert.Equal(t, 1, fake.count("GET /api/businesses/5/details/"))

			require.Len(t, act.audit.entries, 1)
			assert.Equal(t, tt.action, act.audit.entries[0].Action)
			assert.Equal(t, model.OutcomeSuccess, act.audit.entries[0].Outcome)
		})
	}
}

func TestManagerService_FailedMutationSkipsRefetch(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("DELETE /api/managers/2/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Manager is assigned to assessments"})
	})
	act := newTestActivity()

	details, err := NewManagerService(client, act.Activity).Delete(operatorCtx(1), 5, 2)
	require.Error(t, err)
	assert.Nil(t, details)
	assert.Equal(t, "Manager is assigned to assessments", err.Error())
	assert.Equal(t, 0, fake.count("GET"))
	assert.Equal(t, []model.AuditOutcome{model.OutcomeFailure}, act.audit.outcomes())
}

func TestHRUserService_ResetPassword(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("POST /api/hr-users/8/reset-password/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-CSRFToken"))
		writeJSON(w, http.StatusOK, map[string]string{"message": "sent"})
	})
	act := newTestActivity()

	require.NoError(t, NewHRUserService(client, act.Activity).ResetPassword(operatorCtx(1), 8))
	assert.Equal(t, 1, fake.total())
	require.Len(t, act.audit.entries, 1)
	assert.Equal(t, "hr_user.reset_password", act.audit.entries[0].Action)
	assert.Equal(t, "hr_user:8", act.audit.entries[0].Target)
}

func TestHRUserService_CreateRequiresPassword(t *testing.T) {
	fake, client := newFakePlatform(t)

	_, err := NewHRUserService(client, newTestActivity().Activity).Create(operatorCtx(1), 5, HRUserForm{Email: "hr@acme.com", Password: "  "})
	assert.ErrorIs(t, err, util.ErrPasswordRequired)
	assert.Equal(t, 0, fake.total())
}
