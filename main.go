package main

import (
    "fmt"
    "log"
    "os"
    "runtime/pprof"
    "time"

    "github.com/pborman/getopt/v2"
    "github.com/schollz/progressbar/v3"
)

func main() {
    cfg := LoadConfig()

    helpFlag := getopt.BoolLong("help", 'h', "display help")
    limit := getopt.IntLong("limit", 'n', cfg.Limit, "compute G mod m for every m in [1, limit]")
    out := getopt.StringLong("out", 'o', cfg.Out, "output file for the residue table")
    workers := getopt.IntLong("workers", 'w', cfg.Workers, "number of workers evaluating residues")
    cpuprofile := getopt.StringLong("cpuprofile", 0, "", "write cpu profile to file")

    getopt.Parse()

    if *helpFlag {
        getopt.PrintUsage(os.Stderr)
        return
    }

    if *cpuprofile != "" {
        fmt.Println("cpuprofile:", *cpuprofile)
        f, err := os.Create(*cpuprofile)
        if err != nil {
            log.Fatal(err)
        }
        pprof.StartCPUProfile(f)
        defer pprof.StopCPUProfile()
    }

    if *limit < 1 || uint64(*limit) > 1<<32-2 {
        log.Fatalf("limit %d out of range [1, 2^32-2]", *limit)
    }

    start := time.Now()
    fmt.Fprintf(os.Stderr, "sieving totients up to %d\n", *limit)
    tot := TotientTable(uint32(*limit))
    fmt.Fprintf(os.Stderr, "sieve done in %v\n", time.Since(start))

    bar := progressbar.Default(int64(*limit))
    table := BuildTable(tot, *workers, func(done int) {
        bar.Add(done)
    })
    bar.Finish()

    // table[0] is a sentinel; the file starts at m = 1
    if err := WriteTable(*out, table[1:]); err != nil {
        log.Fatal(err)
    }

    fmt.Fprintf(os.Stderr, "wrote %d residues to %s in %v\n", *limit, *out, time.Since(start))
}
