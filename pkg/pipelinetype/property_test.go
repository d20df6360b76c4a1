package pipelinetype_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"

	"github.com/worldlight425/huggingface-hub/pkg/pipelinetype"
)

func TestProperty_PrettyNameNeverEmpty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		typ := rapid.SampledFrom(pipelinetype.All()).Draw(rt, "type")

		name, err := pipelinetype.PrettyName(typ.String())
		require.NoError(rt, err)
		require.NotEmpty(rt, name)
		require.Equal(rt, name, typ.PrettyName())
	})
}

func TestProperty_ParseRejectsNonMembers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.String().Draw(rt, "id")
		if pipelinetype.Type(id).IsValid() {
			rt.Skip("drawn a member")
		}

		_, err := pipelinetype.Parse(id)
		require.ErrorIs(rt, err, pipelinetype.ErrLookup)

		var lookupErr *pipelinetype.LookupError
		require.ErrorAs(rt, err, &lookupErr)
		require.Equal(rt, id, lookupErr.ID)
	})
}

func TestProperty_ParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		typ := rapid.SampledFrom(pipelinetype.All()).Draw(rt, "type")

		got, err := pipelinetype.Parse(typ.String())
		require.NoError(rt, err)
		require.Equal(rt, typ, got)
		require.Equal(rt, typ, pipelinetype.All()[typ.Rank()])
		require.Contains(rt, typ.Domain().Types(), typ)
	})
}

func TestProperty_DefaultPicksLowestRank(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		candidates := rapid.SliceOfN(rapid.SampledFrom(pipelinetype.All()), 1, 8).Draw(rt, "candidates")

		got, ok := pipelinetype.Default(candidates...)
		require.True(rt, ok)
		require.Contains(rt, candidates, got)
		for _, c := range candidates {
			require.LessOrEqual(rt, got.Rank(), c.Rank())
		}
	})
}

func TestConcurrentReads(t *testing.T) {
	expected := pipelinetype.All()

	var grp errgroup.Group
	for i := 0; i < 32; i++ {
		grp.Go(func() error {
			for _, typ := range pipelinetype.All() {
				if _, err := pipelinetype.PrettyName(typ.String()); err != nil {
					return err
				}
				_ = typ.Domain().Types()
			}
			_, _ = pipelinetype.Default(expected...)

			return nil
		})
	}
	require.NoError(t, grp.Wait())
	require.Equal(t, expected, pipelinetype.All())
}
