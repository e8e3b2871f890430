package usecase

// NextSkip computes the offset of the next page, or nil when the current
// page already reaches the end of the result set.
func NextSkip(skip, limit int, total int64) *int {
	next := skip + limit
	if int64(next) < total {
		return &next
	}

	return nil
}
