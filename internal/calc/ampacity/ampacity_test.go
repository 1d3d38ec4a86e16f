package ampacity

import (
	"errors"
	"testing"

	"Ampere/internal/calc/cable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		mat    cable.Material
		ins    cable.Insulation
		ref    Ref
		size   float64
		loaded int
		want   float64
	}{
		{"Cu XLPE C 3-loaded 10", cable.Copper, cable.XLPE, C, 10, 3, 71},
		{"Cu XLPE B1 2-loaded 2.5", cable.Copper, cable.XLPE, B1, 2.5, 2, 31},
		{"Al XLPE D2 3-loaded 16", cable.Aluminium, cable.XLPE, D2, 16, 3, 64},
		{"Al XLPE D2 below table", cable.Aluminium, cable.XLPE, D2, 10, 3, 0},
		{"Al below smallest size", cable.Aluminium, cable.XLPE, C, 1.5, 3, 0},
		{"untabulated method", cable.Copper, cable.XLPE, E, 10, 3, 0},
		{"400 takes 300 row", cable.Copper, cable.XLPE, C, 400, 3, 576},
		{"PVC lower than XLPE", cable.Copper, cable.PVC, C, 10, 3, 57},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.mat, tt.ins, tt.ref, tt.size, tt.loaded))
		})
	}
}

func TestLookupMonotonic(t *testing.T) {
	for key := range tables {
		prev := 0.0
		for _, s := range cable.StandardSizes {
			iz := Lookup(key.material, key.insulation, key.ref, s, key.loaded)
			assert.GreaterOrEqual(t, iz, prev, "%v at %v", key, s)
			prev = iz
		}
	}
}

func TestTablesShape(t *testing.T) {
	for key, col := range tables {
		require.Equal(t, len(col.sizes), len(col.amps), "%v", key)
	}
	for _, m := range []cable.Material{cable.Copper, cable.Aluminium} {
		for _, ins := range []cable.Insulation{cable.XLPE, cable.PVC} {
			for _, r := range []Ref{A1, A2, B1, B2, C, D1, D2} {
				for _, n := range []int{2, 3} {
					_, ok := tables[tableKey{m, ins, r, n}]
					assert.True(t, ok, "%s %s %s %d", m, ins, r, n)
				}
			}
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("numbered buried", func(t *testing.T) {
		m, err := Resolve("72")
		require.NoError(t, err)
		assert.Equal(t, []Ref{D2}, m.Refs)
		assert.True(t, m.Buried)
		assert.Equal(t, 1.5, m.SoilFactor)
	})
	t.Run("reference code", func(t *testing.T) {
		m, err := Resolve("c")
		require.NoError(t, err)
		assert.Equal(t, []Ref{C}, m.Refs)
		assert.False(t, m.Buried)
	})
	t.Run("unused number", func(t *testing.T) {
		_, err := Resolve("13")
		assert.True(t, errors.Is(err, ErrUnknownMethod))
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := Resolve("Z9")
		assert.True(t, errors.Is(err, ErrUnknownMethod))
	})
}

func TestLookupMethodTakesLowest(t *testing.T) {
	m, err := Resolve("40")
	require.NoError(t, err)
	iz, ref := LookupMethod(cable.Copper, cable.XLPE, m, 16, 2)
	assert.Equal(t, 91.0, iz)
	assert.Equal(t, B2, ref)

	m, err = Resolve("31")
	require.NoError(t, err)
	iz, _ = LookupMethod(cable.Copper, cable.XLPE, m, 16, 3)
	assert.Zero(t, iz)
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Material: "Cu", Method: "20", SizeMM2: 6, Loaded: 3})
	require.NoError(t, err)
	assert.Equal(t, 52.0, res.Iz)
	assert.True(t, res.Tabulated)
	assert.Len(t, res.Ladder, len(cable.StandardSizes))

	_, err = Calculate(Input{Material: "Cu", Method: "99", SizeMM2: 6})
	assert.Error(t, err)
}
