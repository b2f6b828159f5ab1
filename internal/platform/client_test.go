package platform

import (
	"context"
	"encoding/json"
	"hr_console/internal/config"
	"hr_console/internal/model"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(config.PlatformConfig{BaseURL: srv.URL, CSRFToken: token, CSRFPath: "/login/"},
		WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestClient_MutationsCarryCSRFToken(t *testing.T) {
	var gotToken, gotBody string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/businesses/", r.URL.Path)
		gotToken = r.Header.Get("X-CSRFToken")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Acme Corp","slug":"acme-corp"}`))
	}), "tok-123")

	b, err := c.CreateBusiness(context.Background(), NewBusiness{Name: "Acme Corp", Slug: "acme-corp", PrimaryColor: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), b.ID)
	assert.Equal(t, "tok-123", gotToken)
	assert.JSONEq(t, `{"name":"Acme Corp","slug":"acme-corp","primary_color":"#000000"}`, gotBody)
}

func TestClient_BootstrapsCSRFCookie(t *testing.T) {
	var gotToken string
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "cookie-tok", Path: "/"})
	})
	mux.HandleFunc("/api/managers/3/", func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-CSRFToken")
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux, "")

	require.NoError(t, c.DeleteManager(context.Background(), 3))
	assert.Equal(t, "cookie-tok", gotToken)
}

func TestClient_ErrorUsesServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Manager with this email already exists"}`))
	}), "tok")

	_, err := c.CreateManager(context.Background(), 1, ManagerInput{Name: "M", Email: "m@x.com"})
	require.Error(t, err)
	assert.Equal(t, "Manager with this email already exists", err.Error())
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestClient_ErrorFallsBackToGenericMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}), "tok")

	err := c.AddBenchmarkEmails(context.Background(), 1, []model.BenchmarkEmail{{Email: "a@x.com"}})
	require.Error(t, err)
	assert.Equal(t, "Failed to upload benchmark emails", err.Error())
}

func TestClient_AddBenchmarkEmailsSendsOneBatch(t *testing.T) {
	calls := 0
	var payload struct {
		Emails []model.BenchmarkEmail `json:"emails"`
	}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/businesses/4/add-benchmark-emails/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
	}), "tok")

	err := c.AddBenchmarkEmails(context.Background(), 4, []model.BenchmarkEmail{
		{Email: "a@x.com", Region: "US"},
		{Email: "b@x.com", Region: "Default"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, payload.Emails, 2)
}

func TestClient_UploadIsMultipart(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		raw, _ := io.ReadAll(f)
		assert.Equal(t, "template.csv", hdr.Filename)
		assert.Contains(t, string(raw), "attribute1")
		w.Write([]byte(`{}`))
	}), "tok")

	err := c.UploadAssessmentTemplate(context.Background(), 2, "template.csv",
		strings.NewReader("attribute1,attribute2,statement_a,statement_b\n"))
	require.NoError(t, err)
}

func TestClient_ListAssessmentsDecodes(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"assessments":[{"id":1,"assessment_type":"standard","candidate_name":"Ada","completed":true,"created_at":"2024-03-01T10:00:00Z","manager_ids":[2,3],"primary_manager_id":2}]}`))
	}), "")

	list, err := c.ListAssessments(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.AssessmentStandard, list[0].AssessmentType)
	assert.Equal(t, []uint{2, 3}, list[0].ManagerIDs)
	require.NotNil(t, list[0].PrimaryManagerID)
	assert.Equal(t, uint(2), *list[0].PrimaryManagerID)
}

func TestClient_ConcurrentCallsShareCSRFBootstrap(t *testing.T) {
	var bootstraps atomic.Int32
	var mu sync.Mutex
	tokens := map[string]int{}
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		bootstraps.Add(1)
		time.Sleep(50 * time.Millisecond)
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "shared-tok", Path: "/"})
	})
	mux.HandleFunc("DELETE /api/managers/{id}/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		tokens[r.Header.Get("X-CSRFToken")]++
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux, "")

	var wg sync.WaitGroup
	for i := uint(1); i <= 5; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			assert.NoError(t, c.DeleteManager(context.Background(), id))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), bootstraps.Load())
	assert.Equal(t, map[string]int{"shared-tok": 5}, tokens)
}

func TestClient_CSRFBootstrapRetriesWithoutCookie(t *testing.T) {
	var bootstraps atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		if bootstraps.Add(1) > 1 {
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "late-tok", Path: "/"})
		}
	})
	var gotToken string
	mux.HandleFunc("DELETE /api/managers/{id}/", func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-CSRFToken")
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux, "")

	require.NoError(t, c.DeleteManager(context.Background(), 1))
	assert.Empty(t, gotToken)
	require.NoError(t, c.DeleteManager(context.Background(), 1))
	assert.Equal(t, "late-tok", gotToken)
	assert.Equal(t, int32(2), bootstraps.Load())
}
