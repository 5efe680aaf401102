//go:build debug

package buildinfo

// Debug enables self-tests, the diagnostic window title and fatal platform asserts.
const Debug = true
