package cable

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadder(t *testing.T) {
	t.Run("aluminium starts at 16", func(t *testing.T) {
		l := Ladder(Aluminium, ThreePhase, false)
		assert.Equal(t, 16.0, l[0])
		assert.Equal(t, 400.0, l[len(l)-1])
	})
	t.Run("single-phase copper limited", func(t *testing.T) {
		l := Ladder(Copper, SinglePhase, true)
		assert.Equal(t, []float64{1.5, 2.5, 4, 6, 10, 16, 25, 35}, l)
	})
	t.Run("full copper ladder ascending", func(t *testing.T) {
		l := Ladder(Copper, ThreePhase, true)
		require.Len(t, l, len(StandardSizes))
		for i := 1; i < len(l); i++ {
			assert.Greater(t, l[i], l[i-1])
		}
	})
}

func TestParse(t *testing.T) {
	m, err := ParseMaterial("aluminium")
	require.NoError(t, err)
	assert.Equal(t, Aluminium, m)

	_, err = ParseMaterial("gold")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	ins, err := ParseInsulation("pvc")
	require.NoError(t, err)
	assert.Equal(t, PVC, ins)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(map[string]float64{"a": 1, "b": 0}))
	err := Validate(map[string]float64{"z": math.NaN(), "a": math.Inf(1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "a is not")
}

func TestFloatJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		T Float `json:"t"`
		U Float `json:"u"`
	}{Float(math.Inf(1)), 0.25})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":null,"u":0.25}`, string(b))

	var f Float
	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.False(t, f.Finite())
}
