package main

import (
    "os"
    "path/filepath"
    "runtime"
    "testing"
)

func chdir(t *testing.T, dir string) {
    t.Helper()
    old, err := os.Getwd()
    if err != nil {
        t.Fatal(err)
    }
    if err := os.Chdir(dir); err != nil {
        t.Fatal(err)
    }
    t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
    chdir(t, t.TempDir())

    cfg := LoadConfig()
    if cfg.Limit != defaultLimit {
        t.Errorf("Limit = %d, want %d", cfg.Limit, defaultLimit)
    }
    if cfg.Out != defaultOut {
        t.Errorf("Out = %q, want %q", cfg.Out, defaultOut)
    }
    if cfg.Workers != runtime.NumCPU() {
        t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
    }
}

func TestLoadConfigEnvFile(t *testing.T) {
    dir := t.TempDir()
    env := "GRAHAM_LIMIT=5000\nGRAHAM_OUT=residues.bin\nGRAHAM_WORKERS=3\n"
    if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644); err != nil {
        t.Fatal(err)
    }
    chdir(t, dir)

    cfg := LoadConfig()
    if cfg.Limit != 5000 {
        t.Errorf("Limit = %d, want 5000", cfg.Limit)
    }
    if cfg.Out != "residues.bin" {
        t.Errorf("Out = %q, want %q", cfg.Out, "residues.bin")
    }
    if cfg.Workers != 3 {
        t.Errorf("Workers = %d, want 3", cfg.Workers)
    }
}

func TestLoadConfigIgnoresBadValues(t *testing.T) {
    dir := t.TempDir()
    env := "GRAHAM_LIMIT=a lot\nGRAHAM_WORKERS=-2\nGRAHAM_OUT=\n"
    if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644); err != nil {
        t.Fatal(err)
    }
    chdir(t, dir)

    cfg := LoadConfig()
    if cfg.Limit != defaultLimit {
        t.Errorf("Limit = %d, want default %d", cfg.Limit, defaultLimit)
    }
    if cfg.Workers != runtime.NumCPU() {
        t.Errorf("Workers = %d, want default %d", cfg.Workers, runtime.NumCPU())
    }
    if cfg.Out != defaultOut {
        t.Errorf("Out = %q, want default %q", cfg.Out, defaultOut)
    }
}
