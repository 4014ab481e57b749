package sm2curve

import (
	"math/big"
	"testing"
)

func TestFelemConversionRoundTrip(t *testing.T) {
	pBig := toBigInt(&prime)
	cases := []*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(42), big.NewInt(0xFFFFFFFF),
		pBig, new(big.Int).Sub(pBig, big.NewInt(1)),
	}
	for _, tc := range cases {
		tc = new(big.Int).Mod(tc, pBig)
		fe := *fromBigInt(tc)
		if got := toBigInt(&fe); got.Cmp(tc) != 0 {
			t.Errorf("conversion failed for %s: got %s", tc, got)
		}
	}
}

func TestFelemArithmetic(t *testing.T) {
	a := *fromBigInt(big.NewInt(123))
	b := *fromBigInt(big.NewInt(456))

	var sum, diff, prod, inv field
	sum.add(&a, &b)
	if got, want := toBigInt(&sum), big.NewInt(579); got.Cmp(want) != 0 {
		t.Errorf("add: got %s, want %s", got, want)
	}

	diff.sub(&sum, &b)
	if toBigInt(&diff).Cmp(toBigInt(&a)) != 0 {
		t.Errorf("(a+b)-b should equal a")
	}

	prod.mul(&a, &b)
	want := new(big.Int).Mod(new(big.Int).Mul(big.NewInt(123), big.NewInt(456)), toBigInt(&prime))
	if got := toBigInt(&prod); got.Cmp(want) != 0 {
		t.Errorf("mul: got %s, want %s", got, want)
	}

	inv.inv(&a)
	prod.mul(&a, &inv)
	if toBigInt(&prod).Cmp(big.NewInt(1)) != 0 {
		t.Errorf("a * a^-1 should equal 1, got %s", toBigInt(&prod))
	}
}

func TestFelemNeg(t *testing.T) {
	var negZero field
	negZero.neg(&field{})
	if !negZero.isZero() {
		t.Errorf("negation of zero should be zero")
	}

	a := *fromBigInt(big.NewInt(123))
	var negA, sum field
	negA.neg(&a)
	sum.add(&a, &negA)
	if !sum.isZero() {
		t.Errorf("a + (-a) should be zero, got %s", toBigInt(&sum))
	}
	want := new(big.Int).Sub(toBigInt(&prime), big.NewInt(123))
	if got := toBigInt(&negA); got.Cmp(want) != 0 {
		t.Errorf("neg: got %s, want %s", got, want)
	}
}

func TestFelemInvZero(t *testing.T) {
	var invZero field
	invZero.inv(&field{})
	if !invZero.isZero() {
		t.Errorf("inverse of zero should be zero by convention")
	}
}

func TestFelemFromBigEdgeCases(t *testing.T) {
	if fe := *fromBigInt(nil); !fe.isZero() {
		t.Errorf("fromBigInt(nil) should return zero")
	}
	if fe := *fromBigInt(big.NewInt(-1)); !fe.isZero() {
		t.Errorf("fromBigInt(negative) should return zero")
	}

	overP := new(big.Int).Add(toBigInt(&prime), big.NewInt(42))
	if got := toBigInt(fromBigInt(overP)); got.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("fromBigInt should reduce mod p: got %s", got)
	}
}

func TestFelemReduce(t *testing.T) {
	a := prime
	a.reduce256()
	if !a.isZero() {
		t.Errorf("reducing p should give zero, got %s", toBigInt(&a))
	}

	a = *fromBigInt(big.NewInt(42))
	a.reduce256()
	if got := toBigInt(&a); got.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("reducing 42 should give 42, got %s", got)
	}
}

func TestFelemReduce512(t *testing.T) {
	var wide [8]uint64
	wide[0] = 42
	var result field
	result.reduce512(&wide)
	if got := toBigInt(&result); got.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("reduce512 of a small value failed: got %s", got)
	}

	wide[0], wide[1] = ^uint64(0), ^uint64(0)
	result.reduce512(&wide)
	expectedBytes := make([]byte, 16)
	for i := range expectedBytes {
		expectedBytes[i] = 0xFF
	}
	want := new(big.Int).Mod(new(big.Int).SetBytes(expectedBytes), toBigInt(&prime))
	if got := toBigInt(&result); got.Cmp(want) != 0 {
		t.Errorf("reduce512 of a wide value failed: got %s, want %s", got, want)
	}
}

func TestFelemBasePointConversion(t *testing.T) {
	p := New().Params()
	if got := toBigInt(fromBigInt(p.Gx)); got.Cmp(p.Gx) != 0 {
		t.Errorf("base point Gx conversion failed")
	}
	if got := toBigInt(fromBigInt(p.Gy)); got.Cmp(p.Gy) != 0 {
		t.Errorf("base point Gy conversion failed")
	}
}
