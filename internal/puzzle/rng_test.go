package puzzle

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)

	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, va)
		}
	}
}

func TestRNGSeedsDiverge(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same > 2 {
		t.Errorf("seeds 1 and 2 agree on %d of 100 draws", same)
	}
}

func TestRNGSpread(t *testing.T) {
	// Crude distribution check: every tenth of [0,1) gets hit.
	r := NewRNG(99)
	var buckets [10]int
	for i := 0; i < 10000; i++ {
		buckets[int(r.Float64()*10)]++
	}
	for i, n := range buckets {
		if n == 0 {
			t.Errorf("bucket %d never hit", i)
		}
	}
}

func TestDateSeedStable(t *testing.T) {
	if DateSeed("2025-01-15", saltPuzzle) != DateSeed("2025-01-15", saltPuzzle) {
		t.Error("same date+salt produced different seeds")
	}
}

func TestDateSeedSaltsIndependent(t *testing.T) {
	date := "2025-01-15"
	seeds := map[uint32]string{}
	for _, salt := range []string{saltPuzzle, saltHangman, saltWordle} {
		s := DateSeed(date, salt)
		if prev, dup := seeds[s]; dup {
			t.Errorf("salt %q collides with %q", salt, prev)
		}
		seeds[s] = salt
	}
}

func TestIntNRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if n := r.IntN(5); n < 0 || n > 4 {
			t.Fatalf("IntN(5) = %d", n)
		}
	}
}
