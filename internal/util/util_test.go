package util

import (
	goerrors "errors"
	"testing"

	"github.com/go-sif/dataset"
	"github.com/stretchr/testify/require"
)

func TestSafeIndexGeneratorRecoversPanic(t *testing.T) {
	gen := SafeIndexGenerator("panicky", func() (*dataset.RawIndex, error) {
		panic("no such directory")
	})
	idx, err := gen()
	require.Nil(t, idx)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Index Generator Panic (panicky): no such directory")
}

func TestSafeIndexGeneratorWrapsError(t *testing.T) {
	cause := goerrors.New("permission denied")
	gen := SafeIndexGenerator("broken", func() (*dataset.RawIndex, error) {
		return nil, cause
	})
	_, err := gen()
	require.True(t, goerrors.Is(err, cause))
}

func TestContainsAll(t *testing.T) {
	require.Nil(t, ContainsAll([]string{"a", "b"}, []string{"b"}))
	require.Equal(t, []string{"c", "d"}, ContainsAll([]string{"a", "b"}, []string{"c", "a", "d"}))
}
