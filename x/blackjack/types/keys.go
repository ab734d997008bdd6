package types

import "encoding/binary"

const (
	// ModuleName defines the module name. It is also the error codespace.
	ModuleName = "blackjack"

	// StoreKey names the analytics database.
	StoreKey = ModuleName
)

var (
	// LastRoundIDKey stores the highest recorded round id as big-endian u64.
	LastRoundIDKey = []byte{0x01}

	// RoundKeyPrefix stores round summaries by id: RoundKeyPrefix || u64be(roundID).
	RoundKeyPrefix = []byte{0x02}
)

func RoundKey(roundID uint64) []byte {
	bz := make([]byte, 1+8)
	bz[0] = RoundKeyPrefix[0]
	binary.BigEndian.PutUint64(bz[1:], roundID)
	return bz
}
