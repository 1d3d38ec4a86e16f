package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Ampere/internal/calc/sizing"
	"Ampere/internal/receipt"
	"Ampere/internal/repo"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const circuitBody = `{"name":"Kitchen","material":"Cu","phases":1,"current_a":16,
	"segments":[{"method":"C","length_m":20}],
	"device":{"family":"mcb-b","rating_a":16},
	"source":{"imin_supply_a":600}}`

func router() *mux.Router {
	h := &Handler{Service: &Service{Repo: repo.NewMemory(), Receipts: &receipt.Signer{Key: []byte("k")}}}
	r := mux.NewRouter()
	r.HandleFunc("/evaluations", h.List).Methods("GET")
	r.HandleFunc("/evaluations/circuit", h.Circuit).Methods("POST")
	r.HandleFunc("/evaluations/chain", h.Chain).Methods("POST")
	r.HandleFunc("/evaluations/{id}", h.Get).Methods("GET")
	r.HandleFunc("/evaluations/{id}/verify", h.Verify).Methods("POST")
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestStoreAndVerify(t *testing.T) {
	r := router()
	res := do(t, r, http.MethodPost, "/evaluations/circuit", circuitBody)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	var created Record
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	assert.Equal(t, KindCircuit, created.Kind)
	assert.NotEmpty(t, created.Receipt)
	assert.Contains(t, string(created.Result), `"size_mm2"`)

	res = do(t, r, http.MethodGet, "/evaluations/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, res.Code)
	var got Record
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	assert.JSONEq(t, string(created.Result), string(got.Result))
	assert.Contains(t, string(got.Input), "Kitchen")

	res = do(t, r, http.MethodPost, "/evaluations/"+created.ID.String()+"/verify", `{"receipt":"`+created.Receipt+`"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"valid":true}`, res.Body.String())

	res = do(t, r, http.MethodPost, "/evaluations/"+created.ID.String()+"/verify", `{"receipt":"forged"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"valid":false`)
}

func TestForeignReceipt(t *testing.T) {
	r := router()
	var a, b Record
	require.NoError(t, json.Unmarshal(do(t, r, http.MethodPost, "/evaluations/circuit", circuitBody).Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(do(t, r, http.MethodPost, "/evaluations/circuit", circuitBody).Body.Bytes(), &b))

	// Same result bytes, different evaluation.
	res := do(t, r, http.MethodPost, "/evaluations/"+b.ID.String()+"/verify", `{"receipt":"`+a.Receipt+`"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "another evaluation")
}

func TestChainAndList(t *testing.T) {
	r := router()
	res := do(t, r, http.MethodPost, "/evaluations/chain?project=depot", `{"tiers":[`+circuitBody+`]}`)
	require.Equal(t, http.StatusCreated, res.Code)
	var rec Record
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &rec))
	assert.Equal(t, KindChain, rec.Kind)

	do(t, r, http.MethodPost, "/evaluations/circuit?project=other", circuitBody)

	res = do(t, r, http.MethodGet, "/evaluations?project=depot", "")
	require.Equal(t, http.StatusOK, res.Code)
	var list []repo.Evaluation
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/evaluations?limit=0", "").Code)
}

func TestErrors(t *testing.T) {
	r := router()
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/evaluations/circuit", "{").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/evaluations/circuit", `{"current_a":16}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/evaluations/chain", `{"tiers":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/evaluations/not-a-uuid", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/evaluations/6f1c1b5e-2f0a-4a57-9a53-3a1f5e1d0c11", "").Code)
}

// reformatted returns stored results the way a JSON column that normalises
// its values would: same document, different bytes.
type reformatted struct {
	*repo.MemoryRepository
}

func (r reformatted) Get(ctx context.Context, id uuid.UUID) (*repo.Evaluation, error) {
	e, err := r.MemoryRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Result = bytes.ReplaceAll(e.Result, []byte(`":`), []byte(`": `))
	return e, nil
}

func TestDriftedResultFailsVerify(t *testing.T) {
	ctx := context.Background()
	signer := &receipt.Signer{Key: []byte("k")}
	store := repo.NewMemory()

	var c sizing.Circuit
	require.NoError(t, json.Unmarshal([]byte(circuitBody), &c))
	created, err := (&Service{Repo: store, Receipts: signer}).Circuit(ctx, "", c)
	require.NoError(t, err)

	drifting := &Service{Repo: reformatted{store}, Receipts: signer}
	err = drifting.Verify(ctx, created.ID, created.Receipt)
	assert.ErrorIs(t, err, receipt.ErrDigestMismatch)

	// A fresh receipt still carries the digest taken at save time, so it
	// cannot vouch for the drifted bytes.
	got, err := drifting.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, string(created.Result), string(got.Result))
	_, err = signer.Verify(got.Receipt, got.Result)
	assert.ErrorIs(t, err, receipt.ErrDigestMismatch)
	_, err = signer.Verify(got.Receipt, created.Result)
	assert.NoError(t, err)
}
