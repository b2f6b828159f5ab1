package service

import (
	"encoding/json"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngLogo = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)

func TestBusinessService_CreateDerivesSlug(t *testing.T) {
	fake, client := newFakePlatform(t)
	var got map[string]string
	fake.handle("POST /api/businesses/{$}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, model.Business{ID: 5, Name: got["name"], Slug: got["slug"]})
	})
	act := newTestActivity()
	svc := NewBusinessService(client, act.Activity, 0)

	res, err := svc.Create(operatorCtx(1), CreateBusinessForm{Name: "Acme   Corp"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "acme-corp", got["slug"])
	assert.Equal(t, "#000000", got["primary_color"])
	assert.Equal(t, uint(5), res.Business.ID)
	assert.Empty(t, res.LogoWarning)
	assert.Equal(t, []model.AuditOutcome{model.OutcomeSuccess}, act.audit.outcomes())
}

func TestBusinessService_LogoFailureKeepsBusiness(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("POST /api/businesses/{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, model.Business{ID: 8, Name: "Acme Corp", Slug: "acme-corp"})
	})
	fake.handle("POST /api/businesses/8/logo/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage offline"})
	})
	act := newTestActivity()
	svc := NewBusinessService(client, act.Activity, 0)

	res, err := svc.Create(operatorCtx(1), CreateBusinessForm{Name: "Acme Corp"},
		&Upload{Filename: "logo.png", Size: int64(len(pngLogo)), Content: pngLogo})
	require.NoError(t, err)
	require.NotNil(t, res.Business)
	assert.Equal(t, uint(8), res.Business.ID)
	assert.Contains(t, res.LogoWarning, "storage offline")
	assert.Equal(t, 0, fake.count("DELETE"))
	assert.Equal(t, []model.AuditOutcome{model.OutcomeWarning}, act.audit.outcomes())

	notices, err := act.notices.List(operatorCtx(1), 1, time.Now())
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, model.NoticeWarning, notices[0].Kind)
}

func TestBusinessService_InvalidLogoStopsBeforeCreate(t *testing.T) {
	fake, client := newFakePlatform(t)
	svc := NewBusinessService(client, newTestActivity().Activity, 0)

	_, err := svc.Create(operatorCtx(1), CreateBusinessForm{Name: "Acme"},
		&Upload{Filename: "logo.txt", Size: 11, Content: []byte("hello world")})
	assert.ErrorIs(t, err, util.ErrLogoNotImage)

	_, err = svc.Create(operatorCtx(1), CreateBusinessForm{Name: "Acme"},
		&Upload{Filename: "logo.png", Size: 3 << 20, Content: pngLogo})
	assert.ErrorIs(t, err, util.ErrLogoTooLarge)

	assert.Equal(t, 0, fake.total())
}

func TestBusinessService_ListFuzzySearch(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("GET /api/businesses/list/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"businesses": []model.Business{
			{ID: 1, Name: "Globex"},
			{ID: 2, Name: "Acme Corp"},
			{ID: 3, Name: "Acme Labs"},
		}})
	})
	svc := NewBusinessService(client, nil, 0)

	all, err := svc.List(operatorCtx(1), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := svc.List(operatorCtx(1), "acme")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Contains(t, b.Name, "Acme")
	}
}

func TestBusinessService_UpdateRefetchesDetails(t *testing.T) {
	fake, client := newFakePlatform(t)
	fake.handle("PUT /api/businesses/4/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	fake.handle("GET /api/businesses/4/details/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.BusinessDetails{Business: model.Business{ID: 4, Name: "Renamed"}})
	})
	svc := NewBusinessService(client, newTestActivity().Activity, 0)

	details, err := svc.Update(operatorCtx(1), 4, UpdateBusinessForm{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", details.Business.Name)
	assert.Equal(t, 1, fake.count("GET /api/businesses/4/details/"))
}
