package roster

// cmpOr returns the first of its arguments that is not zero, or zero if
// all are. It mirrors cmp.Or from Go 1.22 so the package builds on Go 1.21.
func cmpOr(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
