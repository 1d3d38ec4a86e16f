package recommend

import (
	"testing"

	"Ampere/internal/calc/fuse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating(t *testing.T) {
	r, err := Rating(fuse.Neozed, 21)
	require.NoError(t, err)
	assert.Equal(t, 25.0, r)

	r, err = Rating(fuse.MCBB, 16)
	require.NoError(t, err)
	assert.Equal(t, 16.0, r)

	_, err = Rating(fuse.MCBB, 80)
	assert.ErrorIs(t, err, fuse.ErrRatingUnavailable)
}

func TestBreakerFamily(t *testing.T) {
	assert.Equal(t, fuse.MCBD, BreakerFamily(250, 16, "C"))
	assert.Equal(t, fuse.MCBC, BreakerFamily(150, 16, "C"))
	assert.Equal(t, fuse.MCBB, BreakerFamily(80, 16, "C"))
	assert.Equal(t, fuse.MCBB, BreakerFamily(0, 16, "B1"))
	assert.Equal(t, fuse.MCBC, BreakerFamily(0, 16, "D1"))
	assert.Equal(t, fuse.MCBC, BreakerFamily(0, 32, "C"))
}

func TestDevice(t *testing.T) {
	res, err := Device(Input{LoadA: 14, IkMinA: 180})
	require.NoError(t, err)
	assert.Equal(t, "mcb-c", res.Family)
	assert.Equal(t, 16.0, res.RatingA)

	res, err = Device(Input{Family: "nh00", LoadA: 90})
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.RatingA)

	_, err = Device(Input{Family: "nope", LoadA: 10})
	assert.ErrorIs(t, err, fuse.ErrUnknownFamily)
}
