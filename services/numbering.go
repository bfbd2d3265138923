package services

import (
	"fmt"
	"strconv"
	"time"

	"distrisur/repository"

	log "github.com/sirupsen/logrus"
)

// Numbering hands out human-readable record numbers like CARGA-001 backed by
// an atomic per-kind counter. A number is assigned exactly once, before the
// record is first persisted, and never regenerated on update.
type Numbering struct {
	Seq repository.SequenceRepository
}

func NewNumbering(seq repository.SequenceRepository) *Numbering {
	return &Numbering{Seq: seq}
}

// Next returns the next number for the given kind, formatted as PREFIX-NNN
// with the counter zero-padded to three digits. When the counter cannot be
// read it falls back to the last six digits of the current timestamp; those
// values are not monotonic and may collide with counter-issued numbers.
func (n *Numbering) Next(kind, prefix string) string {
	value, err := n.Seq.Next(kind)
	if err != nil {
		log.WithError(err).Warnf("sequence %q unavailable, falling back to timestamp", kind)
		ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
		if len(ts) > 6 {
			ts = ts[len(ts)-6:]
		}
		return fmt.Sprintf("%s-%s", prefix, ts)
	}
	return fmt.Sprintf("%s-%03d", prefix, value)
}
