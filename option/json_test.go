package option_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/tsgen/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJSON_RoundTrip checks every serialized field survives, including
// non-finite bounds and zero values.
func TestJSON_RoundTrip(t *testing.T) {
	owner := set{}
	cases := []*option.Option{
		option.MustNew("rate", 0.5, option.Config{
			Title:      option.S("Rate"),
			Min:        option.F(0),
			Max:        option.F(1),
			Step:       option.F(0.01),
			Validators: []option.Validator{option.Exclusive01},
		}, owner),
		option.MustNew("free", -3, option.Config{}, owner),
		option.MustNew("steps", 8, option.Config{
			Min:        option.F(math.NaN()),
			Step:       option.F(0),
			Validators: []option.Validator{option.Integer, option.Positive, option.NotZero},
		}, nil),
	}

	for _, o := range cases {
		data, err := json.Marshal(o)
		require.NoError(t, err)

		got, err := option.Decode(data)
		require.NoError(t, err)

		assert.Equal(t, o.Name, got.Name)
		assert.Equal(t, o.Title, got.Title)
		assert.Equal(t, o.Value, got.Value)
		assertSameFloat(t, o.Min, got.Min)
		assertSameFloat(t, o.Max, got.Max)
		assert.Equal(t, o.Step, got.Step)
		assert.ElementsMatch(t, o.Validators, got.Validators)
		assert.Nil(t, got.Owner(), "decoded options carry no owner")
	}
}

// TestJSON_Shape pins the wire format.
func TestJSON_Shape(t *testing.T) {
	o := option.MustNew("a", 2, option.Config{Min: option.F(0), Validators: []option.Validator{option.Positive}}, nil)
	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"a","value":2,"title":"a","min":0,"max":"Infinity","step":0.1,"validators":["POSITIVE"]}`,
		string(data))

	bare := option.MustNew("b", 1, option.Config{}, nil)
	data, err = json.Marshal(bare)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"validators":[]`)
	assert.Contains(t, string(data), `"min":"-Infinity"`)
}

// TestJSON_DecodeDefaults checks absent fields take defaults on decode.
func TestJSON_DecodeDefaults(t *testing.T) {
	got, err := option.Decode([]byte(`{"name":"m","value":0}`))
	require.NoError(t, err)
	assert.Equal(t, "m", got.Title)
	assert.True(t, math.IsInf(got.Min, -1))
	assert.True(t, math.IsInf(got.Max, 1))
	assert.Equal(t, option.DefaultStep, got.Step)
}

// TestJSON_DecodeErrors checks configuration errors surface on decode.
func TestJSON_DecodeErrors(t *testing.T) {
	_, err := option.Decode([]byte(`{"name":"m","value":0,"validators":["ODD"]}`))
	assert.ErrorIs(t, err, option.ErrUnknownValidator)

	_, err = option.Decode([]byte(`{"value":1}`))
	assert.ErrorIs(t, err, option.ErrEmptyName)

	_, err = option.Decode([]byte(`{"name":"m","min":"lots"}`))
	assert.Error(t, err)
}

// TestParseValidator covers the id catalog.
func TestParseValidator(t *testing.T) {
	for _, id := range option.ValidatorIDs() {
		v, err := option.ParseValidator(id)
		require.NoError(t, err)
		assert.Equal(t, id, v.String())
	}
	_, err := option.ParseValidator("exclusive_0_1")
	assert.ErrorIs(t, err, option.ErrUnknownValidator)
	assert.Equal(t, []string{"EXCLUSIVE_0_1", "NOT_ZERO", "POSITIVE", "INTEGER"}, option.ValidatorIDs())
}

func assertSameFloat(t *testing.T, want, got float64) {
	t.Helper()
	if math.IsNaN(want) {
		assert.True(t, math.IsNaN(got), "want NaN, got %v", got)
		return
	}
	assert.Equal(t, want, got)
}
