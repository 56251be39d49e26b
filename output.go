package main

import (
    "os"
    "unsafe"
)

// WriteTable dumps table to path as len(table) uint32 words in the host's
// native byte order: position i holds G mod (i+1), no header, no checksum.
// Consumers must know the count and the producing machine's endianness out
// of band.
//
// The slice's backing memory is reinterpreted in place rather than copied
// through an encoder; at the default size that saves a second 4 GiB
// buffer.
func WriteTable(path string, table []uint32) error {
    if len(table) == 0 {
        return os.WriteFile(path, nil, 0644)
    }

    raw := unsafe.Slice((*byte)(unsafe.Pointer(&table[0])), 4*len(table))
    return os.WriteFile(path, raw, 0644)
}
