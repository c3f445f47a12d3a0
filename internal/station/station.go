// Package station identifies the shop's work positions (chairs 1–5 plus the
// VIP chair) and tracks how many orders have been started at each one. The
// counts are advisory: they are independent of whether an order was finished
// or an invoice committed.
package station

import (
	"strconv"

	"github.com/go-faster/errors"
)

// ID identifies a work station: "1".."5" or the VIP sentinel.
type ID string

// VIP is the dedicated VIP chair.
const VIP ID = "vip"

// chairCount is the number of numbered chairs in the shop.
const chairCount = 5

// ErrUnknownStation is returned for identifiers outside 1..5 and "vip".
var ErrUnknownStation = errors.New("unknown station")

// ParseID validates a raw station identifier.
func ParseID(s string) (ID, error) {
	if s == string(VIP) {
		return VIP, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > chairCount {
		return "", ErrUnknownStation
	}
	return ID(s), nil
}

// All returns every station in display order: chairs 1..5, then VIP.
func All() []ID {
	ids := make([]ID, 0, chairCount+1)
	for i := 1; i <= chairCount; i++ {
		ids = append(ids, ID(strconv.Itoa(i)))
	}
	return append(ids, VIP)
}
