package generator_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/tsgen/generator"
	"github.com/katalvlaran/tsgen/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_AllKinds verifies every registered kind builds with valid defaults
// and produces finite samples.
func TestNew_AllKinds(t *testing.T) {
	for _, k := range generator.Kinds() {
		t.Run(string(k), func(t *testing.T) {
			g, err := generator.New(k, generator.WithSeeds(7))
			require.NoError(t, err)
			assert.Equal(t, k, g.Kind())
			assert.Equal(t, k.Title(), g.Title())
			assert.Equal(t, k.Seeded(), g.SeedRequired())
			assert.True(t, g.IsValid(), "defaults must be valid: %v", g.Invalid())

			for _, o := range g.Options() {
				assert.Equal(t, g, o.Owner(), "option %s owned by its generator", o.Name)
			}

			data, err := g.Generate(32)
			require.NoError(t, err)
			require.Len(t, data, 1)
			require.Len(t, data[0], 32)
			for _, v := range data[0] {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			}
		})
	}
}

// TestNew_Errors checks kind and option name validation.
func TestNew_Errors(t *testing.T) {
	_, err := generator.New("brownian")
	assert.ErrorIs(t, err, generator.ErrUnknownKind)

	_, err = generator.ParseKind("brownian")
	assert.ErrorIs(t, err, generator.ErrUnknownKind)

	_, err = generator.New(generator.KindNormal, generator.WithValue("rate", 1))
	assert.ErrorIs(t, err, generator.ErrUnknownOption)

	assert.Panics(t, func() { generator.WithSeedSource(nil) })
}

// TestNew_Seeds checks seed initialisation policy.
func TestNew_Seeds(t *testing.T) {
	g, err := generator.New(generator.KindNormal, generator.WithSeedSource(func() int64 { return 99 }))
	require.NoError(t, err)
	assert.Equal(t, []int64{99}, g.Seeds(), "seeded kinds start with one drawn seed")

	g, err = generator.New(generator.KindNormal, generator.WithSeeds(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, g.Seeds())

	lin, err := generator.New(generator.KindLinear, generator.WithSeeds(1, 2))
	require.NoError(t, err)
	assert.Empty(t, lin.Seeds(), "non-seeded kinds keep no seeds")

	s := generator.DrawSeed()
	assert.GreaterOrEqual(t, s, int64(1))
	assert.Less(t, s, int64(math.MaxInt32))

	a, b := generator.SeedSource(7), generator.SeedSource(7)
	for i := 0; i < 5; i++ {
		x := a()
		assert.Equal(t, x, b(), "same seed, same stream")
		assert.GreaterOrEqual(t, x, int64(1))
		assert.Less(t, x, int64(math.MaxInt32))
	}
}

// TestSeedMutation covers AddSeed, SetSeed and TruncateSeeds.
func TestSeedMutation(t *testing.T) {
	g, err := generator.New(generator.KindUniform, generator.WithSeeds(1, 2))
	require.NoError(t, err)

	g.AddSeed(3)
	assert.Equal(t, []int64{1, 2, 3}, g.Seeds())
	assert.Equal(t, 3, g.NumSeeds())

	require.NoError(t, g.SetSeed(0, 10))
	assert.ErrorIs(t, g.SetSeed(3, 1), generator.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.SetSeed(-1, 1), generator.ErrIndexOutOfRange)

	g.TruncateSeeds(5)
	assert.Equal(t, []int64{10, 2, 3}, g.Seeds())
	g.TruncateSeeds(1)
	assert.Equal(t, []int64{10}, g.Seeds())

	seeds := g.Seeds()
	seeds[0] = 0
	assert.Equal(t, []int64{10}, g.Seeds(), "Seeds returns a copy")
}

// TestGenerate_Determinism checks identical seeds reproduce and distinct
// seeds diverge.
func TestGenerate_Determinism(t *testing.T) {
	a, err := generator.New(generator.KindNormal, generator.WithSeeds(42, 43))
	require.NoError(t, err)
	b, err := generator.New(generator.KindNormal, generator.WithSeeds(42))
	require.NoError(t, err)

	da, err := a.Generate(64)
	require.NoError(t, err)
	db, err := b.Generate(64)
	require.NoError(t, err)

	require.Len(t, da, 2)
	assert.Equal(t, db[0], da[0], "same seed, same series")
	assert.NotEqual(t, da[0], da[1], "different seeds diverge")

	one, err := a.GenerateInstance(64, 1)
	require.NoError(t, err)
	assert.Equal(t, da[1], one)

	_, err = a.GenerateInstance(64, 2)
	assert.ErrorIs(t, err, generator.ErrIndexOutOfRange)
}

// TestGenerate_Errors checks size and validity gating.
func TestGenerate_Errors(t *testing.T) {
	g, err := generator.New(generator.KindNormal, generator.WithValue("sigma", -1))
	require.NoError(t, err)
	assert.False(t, g.IsValid())
	assert.Equal(t, []string{"sigma"}, g.Invalid())

	_, err = g.Generate(10)
	assert.ErrorIs(t, err, generator.ErrInvalidOptions)

	require.NoError(t, g.SetValue("sigma", 2))
	_, err = g.Generate(0)
	assert.ErrorIs(t, err, generator.ErrBadSize)

	assert.ErrorIs(t, g.SetValue("nope", 1), generator.ErrUnknownOption)
}

// TestUniform_CrossField checks the xMin/xMax pair is enforced through the
// generator acting as option owner.
func TestUniform_CrossField(t *testing.T) {
	g, err := generator.New(generator.KindUniform, generator.WithSeeds(1))
	require.NoError(t, err)

	xMin, ok := g.Opt(option.NameXMin)
	require.True(t, ok)
	require.NoError(t, g.SetValue(option.NameXMax, 5))

	assert.False(t, xMin.IsValid(6))
	assert.True(t, xMin.IsValid(4))

	require.NoError(t, g.SetValue(option.NameXMin, 5))
	assert.False(t, g.IsValid())
	assert.ElementsMatch(t, []string{option.NameXMin, option.NameXMax}, g.Invalid())

	require.NoError(t, g.SetValue(option.NameXMin, 2))
	data, err := g.Generate(200)
	require.NoError(t, err)
	for _, v := range data[0] {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
}

// TestLinearAndSine checks the closed-form kinds.
func TestLinearAndSine(t *testing.T) {
	lin, err := generator.New(generator.KindLinear, generator.WithValue("slope", 2), generator.WithValue("intercept", 1))
	require.NoError(t, err)
	data, err := lin.Generate(4)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3, 5, 7}}, data)

	sine, err := generator.New(generator.KindSine, generator.WithValue("frequency", 0.25))
	require.NoError(t, err)
	data, err = sine.Generate(4)
	require.NoError(t, err)
	want := []float64{0, 1, 0, -1}
	for i := range want {
		assert.InDelta(t, want[i], data[0][i], 1e-12)
	}
}

// TestPulse_Rectangular checks the noiseless default pulse shape.
func TestPulse_Rectangular(t *testing.T) {
	g, err := generator.New(generator.KindPulse, generator.WithSeeds(1))
	require.NoError(t, err)
	data, err := g.Generate(8)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, data[0])

	require.NoError(t, g.SetValue("triangular", 0.5))
	assert.False(t, g.IsValid(), "triangular is an integer flag")
}

// TestPulse_Triangular checks the triangular envelope.
func TestPulse_Triangular(t *testing.T) {
	g, err := generator.New(generator.KindPulse, generator.WithSeeds(1),
		generator.WithValue("triangular", 1), generator.WithValue("amplitude", 2))
	require.NoError(t, err)
	data, err := g.Generate(5)
	require.NoError(t, err)
	want := []float64{0, 0.5, 1, 1.5, 2}
	for i := range want {
		assert.InDelta(t, want[i], data[0][i], 1e-12)
	}
}

// TestGBM_Positive checks prices stay positive and steps must be integral.
func TestGBM_Positive(t *testing.T) {
	g, err := generator.New(generator.KindGBM, generator.WithSeeds(5), generator.WithValue("volatility", 0.5))
	require.NoError(t, err)
	data, err := g.Generate(250)
	require.NoError(t, err)
	for _, v := range data[0] {
		assert.Greater(t, v, 0.0)
	}

	require.NoError(t, g.SetValue("steps", 2.5))
	assert.False(t, g.IsValid())
	require.NoError(t, g.SetValue("steps", 0))
	assert.False(t, g.IsValid())
}

// TestGBM_DecodedLooseSteps checks a wire form that drops the steps
// constraints still cannot reach the sampler with unusable values.
func TestGBM_DecodedLooseSteps(t *testing.T) {
	for _, steps := range []string{`0.5`, `0`, `1e9`, `"NaN"`} {
		t.Run(steps, func(t *testing.T) {
			g, err := generator.Decode([]byte(`{"kind":"gbm","seeds":[1],"options":[` +
				`{"name":"steps","value":` + steps + `,"min":"-Infinity","max":"Infinity","validators":[]}]}`))
			require.NoError(t, err)

			assert.False(t, g.IsValid())
			assert.Equal(t, []string{"steps"}, g.Invalid())
			_, err = g.Generate(4)
			assert.ErrorIs(t, err, generator.ErrInvalidOptions)
		})
	}
}

// TestGuards_SamplerPreconditions checks decoded pulse and chirp options
// with loosened bounds are still rejected.
func TestGuards_SamplerPreconditions(t *testing.T) {
	pulse, err := generator.Decode([]byte(`{"kind":"pulse","seeds":[1],"options":[` +
		`{"name":"duty","value":3,"validators":[]},{"name":"noise","value":-1,"validators":[]}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"duty", "noise"}, pulse.Invalid())

	chirp, err := generator.Decode([]byte(`{"kind":"chirp","seeds":[1],"options":[` +
		`{"name":"f1","value":-0.1,"validators":[]}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"f1"}, chirp.Invalid())
}

// TestChirp_Noiseless checks the first chirp sample against the closed form.
func TestChirp_Noiseless(t *testing.T) {
	g, err := generator.New(generator.KindChirp, generator.WithSeeds(3))
	require.NoError(t, err)
	data, err := g.Generate(10)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(2*math.Pi*0.02), data[0][0], 1e-12)
}

// TestCopy checks deep independence and owner rebinding.
func TestCopy(t *testing.T) {
	g, err := generator.New(generator.KindUniform, generator.WithSeeds(1, 2))
	require.NoError(t, err)

	c := g.Copy()
	assert.Equal(t, g.Seeds(), c.Seeds())
	for _, o := range c.Options() {
		assert.Equal(t, c, o.Owner(), "cloned option %s owned by clone", o.Name)
	}

	require.NoError(t, c.SetValue(option.NameXMax, 10))
	require.NoError(t, c.SetSeed(0, 100))
	v, _ := g.Value(option.NameXMax)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, []int64{1, 2}, g.Seeds())

	xMin, _ := c.Opt(option.NameXMin)
	assert.True(t, xMin.IsValid(9), "cross-field resolves against the clone")
	orig, _ := g.Opt(option.NameXMin)
	assert.False(t, orig.IsValid(9))
}

// TestJSON_RoundTrip checks kind, seeds and options survive.
func TestJSON_RoundTrip(t *testing.T) {
	g, err := generator.New(generator.KindUniform, generator.WithSeeds(11, 12), generator.WithValue(option.NameXMax, 4))
	require.NoError(t, err)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var back generator.Generator
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, generator.KindUniform, back.Kind())
	assert.Equal(t, []int64{11, 12}, back.Seeds())
	v, ok := back.Value(option.NameXMax)
	require.True(t, ok)
	assert.Equal(t, 4.0, v)
	for _, o := range back.Options() {
		assert.Same(t, &back, o.Owner().(*generator.Generator))
	}

	want, err := g.Generate(16)
	require.NoError(t, err)
	got, err := back.Generate(16)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDecode_Errors checks foreign kinds and options are rejected.
func TestDecode_Errors(t *testing.T) {
	_, err := generator.Decode([]byte(`{"kind":"weird","seeds":[],"options":[]}`))
	assert.ErrorIs(t, err, generator.ErrUnknownKind)

	_, err = generator.Decode([]byte(`{"kind":"normal","seeds":[1],"options":[{"name":"rate","value":1}]}`))
	assert.ErrorIs(t, err, generator.ErrUnknownOption)

	_, err = generator.Decode([]byte(`{"kind":"normal","seeds":[1],"options":[{"name":"sigma","value":1,"validators":["ODD"]}]}`))
	assert.ErrorIs(t, err, option.ErrUnknownValidator)
}
