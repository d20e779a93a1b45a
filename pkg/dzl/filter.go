package dzl

// Passes reports whether an entry of severity s is emitted under threshold.
//
// A nil threshold and a custom threshold let everything through. Custom
// entries are never filtered. Otherwise the entry passes iff its level is
// at least as severe as the threshold. Levels with no rank never pass a
// built-in threshold.
func Passes(threshold *Level, s Severity) bool {
	if threshold == nil || *threshold == LevelCustom || s.IsCustom() {
		return true
	}
	cmp, err := Compare(*threshold, s.Level)
	if err != nil {
		return false
	}
	return cmp <= 0
}
