package cargo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
)

func TestFindPackage_ExactMatch(t *testing.T) {
	t.Parallel()
	opts, _ := newOptions(t, newFakeCargo(t))

	p, err := opts.FindPackage("double-dep")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "double-dep", p.Name)
	assert.Equal(t, "/work/fixtures/double-dep/Cargo.toml", p.ManifestPath)
}

func TestFindPackage_SimilarNameIsAnError(t *testing.T) {
	t.Parallel()
	for _, query := range []string{"double_dep", "Double-Dep", "DOUBLE_DEP", "doubleDep"} {
		t.Run(query, func(t *testing.T) {
			opts, _ := newOptions(t, newFakeCargo(t))

			p, err := opts.FindPackage(query)
			require.Error(t, err)
			assert.Nil(t, p)

			var similar *cargo.SimilarPackageError
			require.True(t, errors.As(err, &similar), "expected *cargo.SimilarPackageError, got %T", err)
			assert.Equal(t, query, similar.Name)
			assert.Equal(t, "double-dep", similar.Similar)
			assert.Equal(t, "found similar package for "+query+" ~ double-dep", err.Error())
		})
	}
}

func TestFindPackage_NoMatch(t *testing.T) {
	t.Parallel()
	opts, _ := newOptions(t, newFakeCargo(t))

	for _, query := range []string{"quadruple-dep", "doubledep", ""} {
		p, err := opts.FindPackage(query)
		assert.NoError(t, err, "query %q", query)
		assert.Nil(t, p, "query %q", query)
	}
}

func TestFindPackage_MetadataError(t *testing.T) {
	t.Parallel()
	fake := newFakeCargo(t)
	fake.failures = 1
	opts, _ := newOptions(t, fake)

	_, err := opts.FindPackage("zero-dep")
	assert.Error(t, err)
}
