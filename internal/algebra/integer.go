package algebra

// Integer is a constraint for signed integer element types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// IntRing is the ring of fixed-width signed integers. Arithmetic wraps on overflow.
type IntRing[T Integer] struct{}

// Int16Ring is the ring of 16-bit integers.
type Int16Ring = IntRing[int16]

// Int32Ring is the ring of 32-bit integers.
type Int32Ring = IntRing[int32]

// Int64Ring is the ring of 64-bit integers.
type Int64Ring = IntRing[int64]

// Compile-time checks.
var (
	_ Ring[int16]           = Int16Ring{}
	_ IdentityTester[int16] = Int16Ring{}
)

func (IntRing[T]) Zero() T      { return 0 }
func (IntRing[T]) One() T       { return 1 }
func (IntRing[T]) Add(a, b T) T { return a + b }
func (IntRing[T]) Sub(a, b T) T { return a - b }
func (IntRing[T]) Neg(a T) T    { return -a }
func (IntRing[T]) Mul(a, b T) T { return a * b }

func (IntRing[T]) IsZero(a T) bool     { return a == 0 }
func (IntRing[T]) IsOne(a T) bool      { return a == 1 }
func (IntRing[T]) IsMinusOne(a T) bool { return a == -1 }
