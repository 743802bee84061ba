package hook

import "math/bits"

// CalculateFee computes the transfer fee for an amount at the given rate,
// capped at maxFee. The multiplication widens to 128 bits so the
// intermediate product cannot overflow, matching the on-chain math.
func CalculateFee(amount uint64, basisPoints uint16, maxFee uint64) uint64 {
	if basisPoints == 0 || amount == 0 {
		return 0
	}

	hi, lo := bits.Mul64(amount, uint64(basisPoints))
	if hi >= FeeDenominator {
		// Quotient would not fit in 64 bits; the cap applies regardless.
		return maxFee
	}
	fee, _ := bits.Div64(hi, lo, FeeDenominator)

	if fee > maxFee {
		return maxFee
	}
	return fee
}

// NetAmount returns the amount the destination receives after the fee.
// Subtraction saturates at zero as the program does.
func NetAmount(amount uint64, basisPoints uint16, maxFee uint64) uint64 {
	fee := CalculateFee(amount, basisPoints, maxFee)
	if fee > amount {
		return 0
	}
	return amount - fee
}
