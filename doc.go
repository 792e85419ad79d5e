// Package cronista wraps plain functions so that every invocation
// leaves an auditable trace: the computed value (or an explicit absence
// when the call failed), a readable log line with outcome and timing,
// and optional structured diagnostics.
//
// Recorded steps compose. Bind feeds one step's output into the next,
// log entries accumulate across the chain, and the first failure
// short-circuits everything after it — subsequent steps are never
// invoked and the final value is Nothing. Failures of wrapped
// functions never escape as panics or errors; they become data.
//
//	sqrt := cronista.MustRecord(func(x float64) (float64, error) {
//		return math.Sqrt(x), nil
//	}, cronista.WithName("sqrt"))
//	exp := cronista.MustRecord(func(x float64) (float64, error) {
//		return math.Exp(x), nil
//	}, cronista.WithName("exp"))
//
//	c := cronista.Bind(sqrt.Call(1.0), exp)
//	v, _ := cronista.Unveil(c, "value") // exp(sqrt(1.0))
//	for _, line := range cronista.ReadLog(c) {
//		fmt.Println(line)
//	}
package cronista
