package main

// TotientTable computes Euler's totient for every m in [1, n], returned
// as a table of n+1 uint32 values (index 0 is a sentinel). Classic
// Eratosthenes-style accumulation: start with tot[m] = m, then for each
// prime p divide p out and multiply p-1 in on every multiple, visiting
// each (prime, multiple) pair once. O(n log log n) time, one allocation.
//
// The table is the dominant memory cost of the whole program: 4 bytes per
// entry, so roughly 4 GiB at the default n of one billion. If make can't
// get the memory the runtime aborts, which is the only acceptable outcome
// here since there is no partial-result mode.
func TotientTable(n uint32) []uint32 {
    tot := make([]uint32, uint64(n)+1)
    for m := range tot {
        tot[m] = uint32(m)
    }

    for p := uint64(2); p <= uint64(n); p++ {
        if tot[p] != uint32(p) {
            // a smaller prime already divided into p, so p is composite
            continue
        }

        tot[p] = uint32(p - 1)
        for m := 2 * p; m <= uint64(n); m += p {
            tot[m] -= tot[m] / uint32(p)
        }
    }

    return tot
}
