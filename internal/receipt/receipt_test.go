package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	s := &Signer{Key: []byte("test-key")}
	body := []byte(`{"size_mm2":6}`)
	tok, err := s.Sign("42", body)
	require.NoError(t, err)

	rc, err := s.Verify(tok, body)
	require.NoError(t, err)
	assert.Equal(t, "42", rc.EvaluationID)
	assert.Equal(t, "42", rc.ID)
	assert.Equal(t, Digest(body), rc.Digest)

	_, err = s.Verify(tok, []byte(`{"size_mm2":4}`))
	assert.ErrorIs(t, err, ErrDigestMismatch)

	_, err = (&Signer{Key: []byte("other")}).Verify(tok, body)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = s.Verify("garbage", body)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Digest(nil))
	assert.NotEqual(t, Digest([]byte("a")), Digest([]byte("b")))
}

func TestSignDigestRejectsRespacedBody(t *testing.T) {
	s := &Signer{Key: []byte("test-key")}
	stored := []byte(`{"name":"Kitchen","tier":"group","size_mm2":2.5}`)
	tok, err := s.SignDigest("7", Digest(stored))
	require.NoError(t, err)

	_, err = s.Verify(tok, stored)
	assert.NoError(t, err)
	_, err = s.Verify(tok, []byte(`{"name": "Kitchen", "tier": "group", "size_mm2": 2.5}`))
	assert.ErrorIs(t, err, ErrDigestMismatch)
}
