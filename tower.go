package main

import "fmt"

// memoSize bounds the prefix of moduli whose stabilized tower residues are
// computed up front, before any worker starts. Totient chains collapse
// under this bound within a handful of steps, so per-m evaluation only ever
// walks the head of a chain.
const memoSize = 1 << 16

// maxChain bounds the length of any totient chain starting below 2^32:
// phi at least halves an even argument, and an odd argument turns even
// after one application, so 64 levels is already more than enough.
const maxChain = 64

// Evaluator computes residues of Graham's number G from a precomputed
// totient table. The key fact is tower stabilization: G is an exponential
// tower of 3s far taller than the totient chain of any 32-bit modulus, so
// G mod m equals the residue of *any* sufficiently tall tower of 3s. That
// residue obeys
//
//     F(1) = 0
//     F(m) = 3^(F(phi) + phi) mod m,  phi = totient(m)
//
// by the generalized Euler theorem in its exponent-threshold form: the
// tower's exponent is itself a tower, so it is certainly >= log2(m), which
// makes the reduction valid even when 3 divides m. Using the coprime-only
// form of Euler's theorem here would silently corrupt every multiple of 3.
//
// The table and memo are read-only after NewEvaluator returns, so a single
// Evaluator is safe to share across any number of goroutines.
type Evaluator struct {
    tot  []uint32
    memo []uint32
}

// NewEvaluator builds the small-prefix memo bottom-up. phi < m for every
// m >= 2, so each entry only reads entries already filled in.
func NewEvaluator(tot []uint32) *Evaluator {
    lim := len(tot)
    if lim > memoSize {
        lim = memoSize
    }

    memo := make([]uint32, lim)
    for m := 2; m < lim; m++ {
        phi := uint64(tot[m])
        memo[m] = uint32(modExp(3, uint64(memo[phi])+phi, uint64(m)))
    }

    return &Evaluator{tot, memo}
}

// Residue returns G mod m. The only invalid input is m = 0, which has no
// residue; m must otherwise be within the table the Evaluator was built
// from.
func (e *Evaluator) Residue(m uint32) (uint32, error) {
    if m == 0 {
        return 0, fmt.Errorf("graham: modulus must be positive")
    }

    return e.residue(m), nil
}

// residue walks the totient chain of m down until it enters the memo,
// then folds back up one generalized-Euler step per level.
func (e *Evaluator) residue(m uint32) uint32 {
    if m < uint32(len(e.memo)) {
        return e.memo[m]
    }

    // the chain strictly decreases, so this terminates well before maxChain
    var chain [maxChain]uint32
    depth := 0
    c := m
    for c >= uint32(len(e.memo)) {
        chain[depth] = c
        depth++
        c = e.tot[c]
    }

    r := uint64(e.memo[c])
    for i := depth - 1; i >= 0; i-- {
        phi := uint64(e.tot[chain[i]])
        r = modExp(3, r+phi, uint64(chain[i]))
    }

    return uint32(r)
}

// modExp returns base^p mod m by repeated squaring. Everything is widened
// to uint64 so that squarings near m^2 (about 10^18 for m up to 10^9)
// cannot overflow.
func modExp(base, p, m uint64) uint64 {
    res := uint64(1) % m
    val := base % m
    for p > 0 {
        if p%2 == 1 {
            res = res * val % m
        }
        val = val * val % m
        p >>= 1
    }

    return res
}
