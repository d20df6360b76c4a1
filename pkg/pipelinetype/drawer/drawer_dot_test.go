package drawer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldlight425/huggingface-hub/pkg/pipelinetype"
)

func TestDraw(t *testing.T) {
	d := NewDOTDrawer()
	require.NoError(t, d.AddStep("a", "A"))
	require.NoError(t, d.AddStep("b", "B \"quoted\""))
	require.NoError(t, d.AddLink("a", "b"))

	buf := &bytes.Buffer{}
	require.NoError(t, d.Draw(buf))

	expected := `strict digraph {
	rankdir="LR";
	"a" [ label="A", weight=0 ];
	"a" -> "b" [ weight=0 ];
	"b" [ label="B \"quoted\"", weight=0 ];
}
`
	assert.Equal(t, expected, buf.String())
}

func TestGraphAttribute(t *testing.T) {
	d := NewDOTDrawer(GraphAttribute("rankdir", "TB"), GraphAttribute("label", "tasks"))

	buf := &bytes.Buffer{}
	require.NoError(t, d.Draw(buf))

	assert.Equal(t, "strict digraph {\n\tlabel=\"tasks\";\n\trankdir=\"TB\";\n}\n", buf.String())
}

func TestAddStepErrors(t *testing.T) {
	d := NewDOTDrawer()
	require.NoError(t, d.AddStep("a", "A"))

	err := d.AddStep("a", "A")
	assert.ErrorIs(t, err, graph.ErrVertexAlreadyExists)

	err = d.AddLink("a", "missing")
	assert.Error(t, err)
}

func TestAddRegistry(t *testing.T) {
	d := NewDOTDrawer()
	require.NoError(t, d.AddRegistry())

	count, err := d.store.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 1+len(pipelinetype.Domains())+len(pipelinetype.All()), count)

	buf := &bytes.Buffer{}
	require.NoError(t, d.Draw(buf))
	out := buf.String()

	for _, domain := range pipelinetype.Domains() {
		assert.Contains(t, out, `"pipeline-types" -> "`+domain.String()+`" [ weight=0 ];`)

		parent := domain.String()
		for _, typ := range domain.Types() {
			assert.Contains(t, out, `"`+parent+`" -> "`+typ.String()+`" [ weight=0 ];`)
			assert.Contains(t, out, `label="`+typ.PrettyName()+`"`)
			parent = typ.String()
		}
	}

	// Vertices follow declaration order.
	last := -1
	for _, typ := range pipelinetype.All() {
		idx := strings.Index(out, "\n\t\""+typ.String()+"\" [ ")
		require.Greater(t, idx, last, typ)
		last = idx
	}

	// Adding the registry twice fails on the root.
	assert.ErrorIs(t, d.AddRegistry(), graph.ErrVertexAlreadyExists)
}

func TestTaxonomyIsDeterministic(t *testing.T) {
	first := &bytes.Buffer{}
	require.NoError(t, Taxonomy(first))

	for i := 0; i < 5; i++ {
		again := &bytes.Buffer{}
		require.NoError(t, Taxonomy(again))
		assert.Equal(t, first.String(), again.String())
	}
}

func TestSpecificityColor(t *testing.T) {
	mostSpecific, err := specificityColor(0, 4)
	require.NoError(t, err)
	leastSpecific, err := specificityColor(3, 4)
	require.NoError(t, err)
	single, err := specificityColor(0, 1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(mostSpecific, "#"), mostSpecific)
	assert.NotEqual(t, mostSpecific, leastSpecific)
	assert.Equal(t, mostSpecific, single)
}

func TestDrawFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "taxonomy.dot")

	d := NewDOTDrawer()
	require.NoError(t, d.AddRegistry())
	require.NoError(t, d.DrawFile(name))

	content, err := os.ReadFile(name)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Taxonomy(buf))
	assert.Equal(t, buf.String(), string(content))

	err = d.DrawFile(filepath.Join(t.TempDir(), "missing", "taxonomy.dot"))
	assert.Error(t, err)
}
