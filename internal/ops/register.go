package ops

// RegisterAll registers the builtin operation vocabulary.
func RegisterAll(reg *Registry) {
	for _, op := range []Op{
		Sqrt(),
		Exp(),
		Log(),
		Square(),
		Abs(),
		Inverse(),
		Mean(),
		Upper(),
		Trim(),
		Reverse(),
		Announce(),
	} {
		reg.Register(op)
	}
}
