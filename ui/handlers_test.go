package ui

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataprof/domain/core"
	"dataprof/domain/profile"
	"dataprof/internal"
	"dataprof/internal/engine"
	"dataprof/internal/errors"
	"dataprof/internal/testkit"
	"dataprof/ports"
)

// memStore is an in-memory ReportStore for handler tests.
type memStore struct {
	records map[core.ReportID]*ports.StoredReport
	order   []core.ReportID
}

func newMemStore() *memStore {
	return &memStore{records: make(map[core.ReportID]*ports.StoredReport)}
}

func (m *memStore) Save(_ context.Context, rec *ports.StoredReport) error {
	m.records[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return nil
}

func (m *memStore) Get(_ context.Context, id core.ReportID) (*ports.StoredReport, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, errors.NotFound("report " + id.String())
	}
	return rec, nil
}

func (m *memStore) List(_ context.Context, limit int) ([]ports.ReportMeta, error) {
	metas := make([]ports.ReportMeta, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0 && len(metas) < limit; i-- {
		rec := m.records[m.order[i]]
		metas = append(metas, ports.ReportMeta{
			ID:          rec.ID,
			Name:        rec.Name,
			RowCount:    rec.Report.RowCount,
			ColumnCount: rec.Report.ColumnCount,
			Fingerprint: rec.Report.Fingerprint,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return metas, nil
}

func storedFixture(t *testing.T) *ports.StoredReport {
	t.Helper()
	ds := testkit.NewGenerator(9).MixedDataset("orders", 80)
	report, err := engine.New(profile.DefaultConfig()).Run(context.Background(), ds)
	require.NoError(t, err)
	return &ports.StoredReport{
		ID:        core.ReportID(core.NewID()),
		Name:      "orders",
		CreatedAt: core.Now(),
		Report:    report,
	}
}

func TestServer_Index(t *testing.T) {
	store := newMemStore()
	rec := storedFixture(t)
	require.NoError(t, store.Save(context.Background(), rec))

	srv := NewServer(store, internal.NewDefaultLogger())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "orders")
	assert.Contains(t, w.Body.String(), rec.ID.String())
}

func TestServer_ReportHTML(t *testing.T) {
	store := newMemStore()
	rec := storedFixture(t)
	require.NoError(t, store.Save(context.Background(), rec))

	srv := NewServer(store, internal.NewDefaultLogger())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/reports/"+rec.ID.String(), nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "amount")
}

func TestServer_ReportJSON(t *testing.T) {
	store := newMemStore()
	rec := storedFixture(t)
	require.NoError(t, store.Save(context.Background(), rec))

	srv := NewServer(store, internal.NewDefaultLogger())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/reports/"+rec.ID.String(), nil))

	require.Equal(t, 200, w.Code)
	var decoded ports.StoredReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, rec.ID, decoded.ID)
	assert.Equal(t, rec.Report.Fingerprint, decoded.Report.Fingerprint)
}

func TestServer_ErrorMapping(t *testing.T) {
	srv := NewServer(newMemStore(), internal.NewDefaultLogger())

	// Unknown but well-formed ID: not found.
	w := httptest.NewRecorder()
	id := core.ReportID(core.NewID())
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/reports/"+id.String(), nil))
	assert.Equal(t, 404, w.Code)

	// Malformed ID: bad request.
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/reports/not-a-uuid", nil))
	assert.Equal(t, 400, w.Code)
}

func TestServer_ListJSON(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Save(context.Background(), storedFixture(t)))
	require.NoError(t, store.Save(context.Background(), storedFixture(t)))

	srv := NewServer(store, internal.NewDefaultLogger())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/reports", nil))

	require.Equal(t, 200, w.Code)
	var metas []ports.ReportMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metas))
	assert.Len(t, metas, 2)
}
