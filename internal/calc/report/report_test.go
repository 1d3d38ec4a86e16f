package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/shortcircuit"
	"Ampere/internal/calc/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func chain() Input {
	return Input{
		Project: "Workshop",
		Author:  "J. Doe",
		Tiers: []sizing.Circuit{
			{
				Name:     "Service",
				Tier:     sizing.Service,
				Material: "Cu",
				CurrentA: 63,
				Segments: []sizing.Segment{{Method: "C", LengthM: 30}},
				Device:   fuse.Device{Family: "neozed", RatingA: 63},
				Source:   shortcircuit.Source{VoltageV: 400, IminSupplyA: 1000, IkTrafoA: 16000, CosTrafo: 0.3},
			},
			{
				Name:     "Sockets",
				Material: "Cu",
				Phases:   1,
				CurrentA: 16,
				Segments: []sizing.Segment{{Method: "C", LengthM: 20}},
				Device:   fuse.Device{Family: "mcb-b", RatingA: 16},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	doc, err := Build(chain())
	require.NoError(t, err)
	assert.Equal(t, "Cable Dimensioning Report", doc.Title)
	require.Len(t, doc.Results, 2)
	for _, r := range doc.Results {
		require.NoError(t, r.Err())
	}

	_, err = Build(Input{})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}

func TestPDF(t *testing.T) {
	in := chain()
	in.Charts = true
	in.Notes = "Ik,min ≥ 2·In on every tier."
	doc, err := Build(in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.PDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWorkbook(t *testing.T) {
	doc, err := Build(chain())
	require.NoError(t, err)
	f, err := doc.Workbook()
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	back, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer back.Close()

	rows, err := back.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Service", rows[1][1])
	assert.Equal(t, "Sockets", rows[2][1])

	rows, err = back.GetRows(stepSheet)
	require.NoError(t, err)
	var cats []string
	for _, r := range rows[1:] {
		cats = append(cats, r[1])
	}
	assert.Contains(t, cats, string(sizing.CategoryOverload))
	assert.Contains(t, cats, string(sizing.CategoryVoltageDrop))
}

func TestWorkbookKeepsFailedTiers(t *testing.T) {
	in := chain()
	in.Tiers[0].Segments[0].Method = "E"
	doc, err := Build(in)
	require.NoError(t, err)
	f, err := doc.Workbook()
	require.NoError(t, err)

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "none", rows[1][3])
	assert.Contains(t, rows[2][len(rows[2])-1], "upstream")
}

func TestHandlers(t *testing.T) {
	h := &Handler{}
	body := `{"project":"P","tiers":[{"material":"Cu","current_a":20,"segments":[{"method":"C","length_m":10}],` +
		`"device":{"family":"mcb-c","rating_a":20},"source":{"imin_supply_a":800}}]}`

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = httptest.NewRecorder()
	h.Workbook(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := excelize.OpenReader(rec.Body)
	assert.NoError(t, err)

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"tiers":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
