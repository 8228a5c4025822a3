package river

// Safe reports whether no bank hosts missionaries outnumbered by
// cannibals. A bank with zero missionaries is always safe, however
// many cannibals it holds.
func (s State) Safe() bool {
	return !(s.LeftMissionaries != 0 && s.LeftMissionaries < s.LeftCannibals) &&
		!(s.RightMissionaries != 0 && s.RightMissionaries < s.RightCannibals)
}
