package ops

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b-rodrigues/cronista"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	RegisterAll(reg)

	op, err := reg.Lookup("sqrt")
	require.NoError(t, err)
	require.Equal(t, "sqrt", op.Name())

	_, err = reg.Lookup("teleport")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown operation")
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	RegisterAll(reg)

	names := reg.Names()
	require.NotEmpty(t, names)
	require.True(t, sort.StringsAreSorted(names))
	require.Contains(t, names, "mean")
	require.Contains(t, names, "announce")
}

func TestNumericOps(t *testing.T) {
	cases := []struct {
		op   Op
		in   any
		want float64
	}{
		{Sqrt(), 16.0, 4},
		{Sqrt(), "16", 4}, // CLI input arrives as text
		{Exp(), 0.0, 1},
		{Square(), 3.0, 9},
		{Abs(), -2.5, 2.5},
		{Inverse(), 4.0, 0.25},
		{Log(), math.E, 1},
	}
	for _, tc := range cases {
		got, err := tc.op.Apply(tc.in)
		require.NoError(t, err, tc.op.Name())
		require.InDelta(t, tc.want, got.(float64), 1e-9, tc.op.Name())
	}
}

func TestInverseOfZero(t *testing.T) {
	_, err := Inverse().Apply(0.0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "division by zero")
}

func TestNumericOpRejectsText(t *testing.T) {
	_, err := Sqrt().Apply("not a number")
	require.Error(t, err)
}

func TestMean(t *testing.T) {
	v, err := Mean().Apply([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	// Mean of a scalar is the scalar.
	v, err = Mean().Apply(7.0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = Mean().Apply([]float64{})
	require.Error(t, err)
}

func TestTextOps(t *testing.T) {
	v, err := Upper().Apply("shh")
	require.NoError(t, err)
	require.Equal(t, "SHH", v)

	v, err = Trim().Apply("  padded  ")
	require.NoError(t, err)
	require.Equal(t, "padded", v)

	v, err = Reverse().Apply("abc")
	require.NoError(t, err)
	require.Equal(t, "cba", v)

	_, err = Upper().Apply(3.14)
	require.Error(t, err)
}

func TestSqrtWarnsUnderStrictRecorder(t *testing.T) {
	step := cronista.MustRecord(Sqrt().Apply,
		cronista.WithName("sqrt"),
		cronista.WithStrictness(cronista.StrictWarnings))

	c := step.Call(-1.0)
	require.True(t, c.Value().IsNothing())
	require.Contains(t, c.Log()[0].Message, "NaNs produced")

	// The same input passes under the default strictness.
	lenient := cronista.MustRecord(Sqrt().Apply, cronista.WithName("sqrt"))
	c = lenient.Call(-1.0)
	require.True(t, c.IsOK())
	v, _ := c.Value().Get()
	require.True(t, math.IsNaN(v.(float64)))
}

func TestAnnounceFailsOnlyUnderStrictOutput(t *testing.T) {
	strict := cronista.MustRecord(Announce().Apply,
		cronista.WithName("announce"),
		cronista.WithStrictness(cronista.StrictOutput))
	c := strict.Call("hello")
	require.True(t, c.Value().IsNothing())
	require.Contains(t, c.Log()[0].Message, "captured output")

	lenient := cronista.MustRecord(Announce().Apply,
		cronista.WithName("announce"),
		cronista.WithStrictness(cronista.StrictWarnings))
	c = lenient.Call("hello")
	require.True(t, c.IsOK())
}
