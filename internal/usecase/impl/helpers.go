// Package impl contains the implementation of the application's business logic.
package impl

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage clamps caller-supplied pagination to sane bounds.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return skip, limit
}
