package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	t.Setenv("PHYSUNITS_LOG_ENCODING", "json")
	a, err := InitializeApp()
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestInitializeApp_InvalidConfig(t *testing.T) {
	t.Setenv("PHYSUNITS_WORKERS", "0")
	_, err := InitializeApp()
	assert.Error(t, err)
}
