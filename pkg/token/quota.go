package token

import (
	"errors"
	"math/big"
)

// ErrQuotaExceeded reports a mint that would overrun the minter's quota.
var ErrQuotaExceeded = errors.New("mint amount exceeds remaining quota")

// Remaining returns the quota a minter has left. Quota reductions below
// the already-minted total leave zero remaining rather than underflowing.
func (m MinterInfo) Remaining() uint64 {
	if m.Minted >= m.Quota {
		return 0
	}
	return m.Quota - m.Minted
}

// CheckMint verifies the minter can mint amount more units.
func (m MinterInfo) CheckMint(amount uint64) error {
	if amount > m.Remaining() {
		return ErrQuotaExceeded
	}
	return nil
}

// RemainingBig computes quota − minted over arbitrary-precision integers,
// for aggregation across minters where totals can exceed uint64.
func RemainingBig(quota, minted *big.Int) *big.Int {
	remaining := new(big.Int).Sub(quota, minted)
	if remaining.Sign() < 0 {
		return big.NewInt(0)
	}
	return remaining
}

// TotalRemaining sums the remaining quota over a set of minters.
func TotalRemaining(minters []MinterInfo) *big.Int {
	total := new(big.Int)
	for _, minter := range minters {
		total.Add(total, new(big.Int).SetUint64(minter.Remaining()))
	}
	return total
}
