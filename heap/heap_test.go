package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMallocFree_RoundTrip(t *testing.T) {
	region := make([]byte, 64*1024)
	require.NoError(t, Init(region))

	p := Malloc(128)
	require.NotNil(t, p)

	before := Available()
	Free(p)
	assert.Greater(t, Available(), before)
}

func TestMalloc_ClampsOversizedRequest(t *testing.T) {
	region := make([]byte, 64*1024)
	require.NoError(t, Init(region))

	// A request above requestCap is served as a requestFloor-byte
	// block rather than rejected outright or honored verbatim.
	p := Malloc(20000)
	require.NotNil(t, p)
	Free(p)
}

func TestMalloc_NilBeforeInit(t *testing.T) {
	pool = nil

	assert.Nil(t, Malloc(64))
	assert.Equal(t, int64(0), Available())
}
