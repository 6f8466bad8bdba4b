package store

import (
	"crypto/md5"
	"encoding/hex"
)

func hashString(s string) Hash {
	sum := md5.Sum([]byte(s))
	return Hash(hex.EncodeToString(sum[:]))
}
