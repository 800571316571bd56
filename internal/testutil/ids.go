package testutil

import (
	"strings"

	"github.com/google/uuid"
)

// ChangeID returns a random jj-style change ID: 32 characters from the k-z
// alphabet jj renders change IDs in.
func ChangeID() string {
	hexStr := strings.ReplaceAll(uuid.New().String(), "-", "")
	var b strings.Builder
	for i := 0; i < len(hexStr); i++ {
		b.WriteByte('k' + hexVal(hexStr[i]))
	}
	return b.String()
}

// CommitID returns a random 40-character hex commit ID.
func CommitID() string {
	s := strings.ReplaceAll(uuid.New().String(), "-", "") +
		strings.ReplaceAll(uuid.New().String(), "-", "")
	return s[:40]
}

func hexVal(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}
