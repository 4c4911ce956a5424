package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation = "23505"

	classDataException      = "22"
	classIntegrityViolation = "23"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// IsPermanent reports whether err is a statement the server rejected for its
// data, so running it again fails the same way. Connection losses,
// serialization failures, deadlocks and cancellations are not permanent.
func IsPermanent(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code.Class() {
	case classDataException, classIntegrityViolation:
		return true
	}
	return false
}
