// Package tracking generates the short human-readable codes handed to
// customers: ticket numbers and invoice numbers share the same scheme.
package tracking

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Number returns a code of the form "jan1234": the lowercase three-letter
// abbreviation of now's month followed by a random number in [1000, 9999].
// The scheme is not unique by itself; stores check the result against their
// existing numbers and retry.
func Number(now time.Time) string {
	month := strings.ToLower(now.Format("Jan"))
	return fmt.Sprintf("%s%d", month, 1000+rand.IntN(9000))
}
