package utils

import (
	"crypto/md5"
	"sort"
	"strings"

	"github.com/gofrs/uuid"
)

// DeriveID deterministically derives a UUID from a set of strings. The
// parts are sorted first so callers get the same id regardless of
// argument order.
func DeriveID(parts ...string) uuid.UUID {
	if len(parts) == 0 {
		parts = []string{uuid.Nil.String()}
	}

	sorted := make([]string, len(parts))
	copy(sorted, parts)
	sort.Strings(sorted)

	return uuidHash([]byte(strings.Join(sorted, "")))
}

func uuidHash(b []byte) uuid.UUID {
	h := md5.New()
	h.Write(b)
	sum := h.Sum(nil)
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.FromBytesOrNil(sum)
}
