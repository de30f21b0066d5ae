package algebra

// PowerUint raises x to a non-negative integer power by repeated squaring,
// using O(log n) multiplications. PowerUint(x, 0) is One(), including 0^0.
//
// When r implements IdentityTester the zero, one and minus-one bases are
// short-circuited; otherwise every base goes through plain squaring.
func PowerUint[T any](r Ring[T], x T, n uint64) T {
	if it, ok := r.(IdentityTester[T]); ok {
		switch {
		case it.IsZero(x) && n > 0:
			return r.Zero()
		case it.IsOne(x):
			return x
		case it.IsMinusOne(x):
			return powBySquaring(r, x, n%2)
		}
	}
	return powBySquaring(r, x, n)
}

// PowerInt raises x to an integer power in a field.
// Negative exponents compute One() / PowerUint(x, -n); division by a zero base
// behaves as the field's own Div does.
func PowerInt[T any](f Field[T], x T, n int64) T {
	if n >= 0 {
		return PowerUint[T](f, x, uint64(n))
	}
	// -(n+1)+1 avoids overflow for math.MinInt64.
	abs := uint64(-(n + 1)) + 1
	return f.Div(f.One(), PowerUint[T](f, x, abs))
}

// powBySquaring multiplies in the same association order as x*x for n == 2,
// so PowerUint(x, 2) equals Mul(x, x) exactly.
func powBySquaring[T any](r Ring[T], x T, n uint64) T {
	if n == 0 {
		return r.One()
	}

	var acc T
	have := false
	base := x
	for n > 0 {
		if n&1 == 1 {
			if have {
				acc = r.Mul(acc, base)
			} else {
				acc = base
				have = true
			}
		}
		n >>= 1
		if n > 0 {
			base = r.Mul(base, base)
		}
	}
	return acc
}
