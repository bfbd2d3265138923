package repository

// SequenceRepository hands out monotonically increasing numbers per named
// sequence. Next must be atomic so that concurrent callers never see the
// same value.
type SequenceRepository interface {
	Next(name string) (int64, error)
}
