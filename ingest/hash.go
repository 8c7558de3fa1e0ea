package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// PatientHasher replaces patient identifiers with a salted one-way hash.
// The same (identifier, salt) pair always hashes identically; the raw
// identifier never leaves the normalizer.
type PatientHasher struct {
	salt string
}

func NewPatientHasher(salt string) *PatientHasher {
	return &PatientHasher{salt: salt}
}

func (h *PatientHasher) Hash(patientID string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s%s", patientID, h.salt)))
	return hex.EncodeToString(sum[:])
}
