package main

import (
    "runtime"
    "strconv"

    "github.com/joho/godotenv"
)

const (
    defaultLimit = 1000000000
    defaultOut   = "graham_mod_n"
)

// RunConfig holds the run parameters: built-in defaults, overlaid by a
// .env file in the working directory if one exists, overlaid by explicit
// flags in main.
type RunConfig struct {
    Limit   int
    Out     string
    Workers int
}

func LoadConfig() RunConfig {
    cfg := RunConfig{defaultLimit, defaultOut, runtime.NumCPU()}

    env, err := godotenv.Read()
    if err != nil {
        // no .env is the normal case
        return cfg
    }

    if v, ok := env["GRAHAM_LIMIT"]; ok {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            cfg.Limit = n
        }
    }
    if v, ok := env["GRAHAM_OUT"]; ok && v != "" {
        cfg.Out = v
    }
    if v, ok := env["GRAHAM_WORKERS"]; ok {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            cfg.Workers = n
        }
    }

    return cfg
}
