package generators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paulo-21/g2io/generators"
)

// wantAliases is the stable listing order of the registry.
var wantAliases = []string{"chain", "erdos_renyi", "barabasi_albert", "tree", "watts_strogatz"}

// TestRegistry_Listing verifies both descriptor lists: same five models,
// stable order, populated schema and description fields.
func TestRegistry_Listing(t *testing.T) {
	dir := generators.Directed()
	undir := generators.Undirected()

	require.Len(t, dir, len(wantAliases))
	require.Equal(t, dir, undir, "direction must not change model availability")

	for i, d := range dir {
		assert.Equal(t, wantAliases[i], d.Name, "listing order is stable")
		assert.NotEmpty(t, d.Params, "every model declares parameters")
		assert.NotEmpty(t, d.Description)
	}

	assert.Equal(t, "n", dir[0].Params)
	assert.Equal(t, "n,p", dir[1].Params)
	assert.Equal(t, "n,m", dir[2].Params)
	assert.Equal(t, "n", dir[3].Params)
	assert.Equal(t, "n,k,p", dir[4].Params)
}

// TestDispatch_ErrorTaxonomy walks the binding failure classes through the
// public constructors.
func TestDispatch_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want error
	}{
		{name: "unknown model", spec: "foo/3", want: generators.ErrUnknownModel},
		{name: "unknown model without params", spec: "foo", want: generators.ErrUnknownModel},
		{name: "empty spec", spec: "", want: generators.ErrUnknownModel},
		{name: "chain without params", spec: "chain", want: generators.ErrArityMismatch},
		{name: "chain with too many params", spec: "chain/1,2,3", want: generators.ErrArityMismatch},
		{name: "malformed count", spec: "tree/seven", want: generators.ErrParameterParse},
		{name: "malformed probability", spec: "erdos_renyi/10,p", want: generators.ErrParameterParse},
		{name: "zero-length chain", spec: "chain/0", want: generators.ErrParameterRange},
		{name: "attachment count too large", spec: "barabasi_albert/5,10", want: generators.ErrParameterRange},
		{name: "probability above one", spec: "erdos_renyi/10,1.01", want: generators.ErrParameterRange},
		{name: "odd lattice degree", spec: "watts_strogatz/20,3,0.5", want: generators.ErrParameterRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, errD := generators.NewDirected(tc.spec)
			assert.ErrorIs(t, errD, tc.want, "directed dispatch")

			_, errU := generators.NewUndirected(tc.spec)
			assert.ErrorIs(t, errU, tc.want, "undirected dispatch")
		})
	}
}

// TestDispatch_CapsuleIdentity verifies that a successful dispatch tags the
// capsule with its model alias and direction.
func TestDispatch_CapsuleIdentity(t *testing.T) {
	gen, err := generators.NewDirected("chain/3")
	require.NoError(t, err)
	assert.Equal(t, "chain", gen.Name())
	assert.True(t, gen.Directed())

	gen, err = generators.NewUndirected("tree/7")
	require.NoError(t, err)
	assert.Equal(t, "tree", gen.Name())
	assert.False(t, gen.Directed())
}

// TestDispatch_AllListedModelsConstruct feeds every listed model a valid
// spec to keep listing and dispatch in lockstep.
func TestDispatch_AllListedModelsConstruct(t *testing.T) {
	valid := map[string]string{
		"chain":           "chain/4",
		"erdos_renyi":     "erdos_renyi/6,0.5",
		"barabasi_albert": "barabasi_albert/6,2",
		"tree":            "tree/6",
		"watts_strogatz":  "watts_strogatz/8,4,0.2",
	}

	for _, d := range generators.Directed() {
		spec, ok := valid[d.Name]
		require.True(t, ok, "listed model %q lacks a test spec", d.Name)

		gen, err := generators.NewDirected(spec)
		require.NoError(t, err, "spec %q must dispatch", spec)

		g := gen.Sample(newRand(1))
		assert.Positive(t, g.NodeCount(), "%s must produce nodes", d.Name)
		assert.True(t, g.Directed())
	}
}
