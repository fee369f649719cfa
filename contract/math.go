package contract

import "math"

// Checked integer arithmetic. Every amount operation routes through here so a
// wrap can never mint or destroy value silently; overflow aborts the whole
// transaction.

// checkedAdd adds two amounts, aborting on overflow or a negative result.
func checkedAdd(a, b Amount) Amount {
	sum := int64(a) + int64(b)
	if (b > 0 && sum < int64(a)) || (b < 0 && sum > int64(a)) {
		abortWith(SymOverflow, "add %d + %d", a, b)
	}
	if sum < 0 {
		abortWith(SymOverflow, "negative amount %d", sum)
	}
	return Amount(sum)
}

// checkedMul multiplies an amount by a non-negative factor.
func checkedMul(a Amount, factor int64) Amount {
	if a == 0 || factor == 0 {
		return 0
	}
	if factor < 0 || a < 0 {
		abortWith(SymOverflow, "mul %d * %d", a, factor)
	}
	if int64(a) > math.MaxInt64/factor {
		abortWith(SymOverflow, "mul %d * %d", a, factor)
	}
	return Amount(int64(a) * factor)
}

// mulDivFloor computes a * num / den with floor rounding, the only rounding
// mode used for issuance so the program can never over-mint.
func mulDivFloor(a Amount, num, den int64) Amount {
	if den <= 0 {
		abortWith(SymOverflow, "division by %d", den)
	}
	prod := checkedMul(a, num)
	return Amount(int64(prod) / den)
}
