package main

import "sync"

// chunkSize is the number of consecutive moduli a worker claims at a time.
// Big enough that channel traffic is noise, small enough that the progress
// bar still moves.
const chunkSize = 1 << 14

type span struct {
    lo uint32 // inclusive
    hi uint32 // exclusive
}

// BuildTable computes G mod m for every m in [1, n], where n = len(tot)-1,
// and returns the results as a table of n+1 uint32 values (index 0 is a
// sentinel, matching the totient table's layout).
//
// The index range is fanned out to workers in contiguous chunks. Each
// worker writes only its own disjoint slots, and the totient table and
// memo are fully built before the first worker starts, so no locking is
// needed anywhere. progress, if non-nil, is called once per finished chunk
// with the number of entries it covered; it may be called from several
// goroutines at once.
func BuildTable(tot []uint32, workers int, progress func(done int)) []uint32 {
    n := uint32(len(tot) - 1)
    res := make([]uint32, uint64(n)+1)
    ev := NewEvaluator(tot)

    if workers < 1 {
        workers = 1
    }

    work := make(chan span)
    go func() {
        for lo := uint64(1); lo <= uint64(n); lo += chunkSize {
            hi := lo + chunkSize
            if hi > uint64(n)+1 {
                hi = uint64(n) + 1
            }
            work <- span{uint32(lo), uint32(hi)}
        }
        close(work)
    }()

    var wg sync.WaitGroup
    for i := 0; i < workers; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for sp := range work {
                for m := sp.lo; m < sp.hi; m++ {
                    res[m] = ev.residue(m)
                }
                if progress != nil {
                    progress(int(sp.hi - sp.lo))
                }
            }
        }()
    }
    wg.Wait()

    return res
}
