//go:build gpu

package main

// Registers the gg GPU accelerator; rendering falls back to the CPU when no
// adapter is available.
import _ "github.com/gogpu/gg/gpu"
