package skiplist

// invariant guards preconditions that only API misuse can violate: advancing
// past End, retreating past Begin, erasing through a foreign or past-the-end
// cursor. Violations are programmer errors, never recoverable conditions, so
// they panic with the broken precondition by name.
func invariant(cond bool, msg string) {
	if !cond {
		panic("skiplist: " + msg)
	}
}
