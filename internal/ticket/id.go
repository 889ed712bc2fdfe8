package ticket

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID builds a short ticket identifier: the current unix-millisecond
// timestamp in base 36 followed by five random base-36 characters.
// Collisions are possible; the store's unique constraint is the final
// arbiter.
func NewID() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for i := 0; i < 5; i++ {
		sb.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return sb.String()
}
