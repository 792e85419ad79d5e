package cronista

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/b-rodrigues/cronista/diff"
)

func recSqrt(t *testing.T, opts ...Option) Step[float64, float64] {
	t.Helper()
	opts = append([]Option{WithName("sqrt")}, opts...)
	s, err := Record(func(x float64) (float64, error) {
		return math.Sqrt(x), nil
	}, opts...)
	require.NoError(t, err)
	return s
}

func TestRecordSuccess(t *testing.T) {
	c := recSqrt(t).Call(16)

	v, ok := c.Value().Get()
	require.True(t, ok)
	require.Equal(t, 4.0, v)

	log := c.Log()
	require.Len(t, log, 1)
	require.Equal(t, 1, log[0].Step)
	require.Equal(t, OutcomeOK, log[0].Outcome)
	require.Equal(t, "sqrt", log[0].Function)
	require.Equal(t, "success", log[0].Message)
	require.False(t, log[0].StartTime.IsZero())
}

func TestRecordError(t *testing.T) {
	s, err := Record(func(x float64) (float64, error) {
		return 0, errors.New("no negative inputs")
	}, WithName("guarded"))
	require.NoError(t, err)

	c := s.Call(-1)
	require.True(t, c.Value().IsNothing())

	log := c.Log()
	require.Len(t, log, 1)
	require.Equal(t, OutcomeNOK, log[0].Outcome)
	require.Equal(t, "no negative inputs", log[0].Message)
	require.Nil(t, log[0].Inspector)
	require.Nil(t, log[0].Diff)
}

func TestRecordRecoversPanic(t *testing.T) {
	inv := MustRecord(func(x int) (int, error) {
		return 1 / x, nil
	}, WithName("inverse"))

	c := inv.Call(0) // must not panic through
	require.True(t, c.Value().IsNothing())

	log := c.Log()
	require.Equal(t, OutcomeNOK, log[0].Outcome)
	require.Contains(t, log[0].Message, "divide by zero")
}

func TestStrictnessGating(t *testing.T) {
	warner := func(x int) (int, error) {
		Warnf("suspicious input %d", x)
		return x, nil
	}
	printer := func(x int) (int, error) {
		fmt.Println("working on", x)
		return x, nil
	}

	cases := []struct {
		name   string
		fn     func(int) (int, error)
		strict Strictness
		wantOK bool
	}{
		{"warn under errors", warner, StrictErrors, true},
		{"warn under warnings", warner, StrictWarnings, false},
		{"warn under output", warner, StrictOutput, false},
		{"print under errors", printer, StrictErrors, true},
		{"print under warnings", printer, StrictWarnings, true},
		{"print under output", printer, StrictOutput, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := MustRecord(tc.fn, WithName(tc.name), WithStrictness(tc.strict))
			c := s.Call(5)
			require.Equal(t, tc.wantOK, c.IsOK())
			if !tc.wantOK {
				require.Equal(t, OutcomeNOK, c.Log()[0].Outcome)
			}
		})
	}
}

func TestWarningMessageRecorded(t *testing.T) {
	s := MustRecord(func(x int) (int, error) {
		Warnf("NaNs produced")
		return x, nil
	}, WithName("warner"), WithStrictness(StrictWarnings))

	c := s.Call(1)
	require.Equal(t, "warning: NaNs produced", c.Log()[0].Message)
}

func TestCapturedOutputMessageRecorded(t *testing.T) {
	s := MustRecord(func(x int) (int, error) {
		fmt.Println("chatty step")
		return x, nil
	}, WithName("printer"), WithStrictness(StrictOutput))

	c := s.Call(1)
	require.Equal(t, "captured output: chatty step", c.Log()[0].Message)
}

func TestErrorWinsOverWarning(t *testing.T) {
	s := MustRecord(func(x int) (int, error) {
		Warnf("about to fail")
		return 0, errors.New("boom")
	}, WithName("failing"), WithStrictness(StrictWarnings))

	c := s.Call(1)
	require.Equal(t, "boom", c.Log()[0].Message)
}

func TestInspectorAttached(t *testing.T) {
	s := recSqrt(t, WithInspector(func(v any) (any, error) {
		return fmt.Sprintf("%T", v), nil
	}))

	c := s.Call(9)
	log := c.Log()
	require.Equal(t, "float64", log[0].Inspector)
}

func TestInspectorErrorDoesNotFailStep(t *testing.T) {
	s := recSqrt(t, WithInspector(func(v any) (any, error) {
		return nil, errors.New("bad probe")
	}))

	c := s.Call(9)
	require.True(t, c.IsOK())
	require.Equal(t, "<inspector error: bad probe>", c.Log()[0].Inspector)
}

func TestInspectorSkippedOnFailure(t *testing.T) {
	called := false
	s := MustRecord(func(x int) (int, error) {
		return 0, errors.New("nope")
	}, WithInspector(func(v any) (any, error) {
		called = true
		return v, nil
	}))

	c := s.Call(1)
	require.True(t, c.Value().IsNothing())
	require.False(t, called)
}

func TestDiffAttachedOnSuccess(t *testing.T) {
	s := MustRecord(func(v string) (string, error) {
		return v + "!", nil
	}, WithName("shout"), WithDiff(diff.ModeSummary))

	c := s.Call("hello")
	a := c.Log()[0].Diff
	require.NotNil(t, a)
	require.Equal(t, 1, a.Insertions)
	require.Equal(t, 0, a.Deletions)
}

func TestDiffSkippedOnFailure(t *testing.T) {
	s := MustRecord(func(v string) (string, error) {
		return "", errors.New("nope")
	}, WithDiff(diff.ModeFull))

	c := s.Call("hello")
	require.Nil(t, c.Log()[0].Diff)
}

func TestRecordConfigurationErrors(t *testing.T) {
	fn := func(x int) (int, error) { return x, nil }

	_, err := Record(fn, WithStrictness(Strictness(0)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "strictness")

	_, err = Record(fn, WithStrictness(Strictness(4)))
	require.Error(t, err)

	_, err = Record(fn, WithDiff(diff.Mode(17)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "diff mode")

	_, err = Record[int, int](nil)
	require.Error(t, err)

	require.Panics(t, func() {
		MustRecord(fn, WithStrictness(Strictness(9)))
	})
}

func TestDefaultName(t *testing.T) {
	s := MustRecord(func(x int) (int, error) { return x, nil })
	require.Equal(t, AnonymousName, s.Name())
	require.Equal(t, AnonymousName, s.Call(1).Log()[0].Function)
}

func TestRunTimeRecorded(t *testing.T) {
	s := MustRecord(func(x int) (int, error) {
		time.Sleep(5 * time.Millisecond)
		return x, nil
	}, WithName("slow"))

	e := s.Call(1).Log()[0]
	require.GreaterOrEqual(t, e.RunTime, 5*time.Millisecond)
	require.True(t, strings.HasPrefix(e.Line(), "OK `slow` at "))
}
