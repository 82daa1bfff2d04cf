//go:build !windows

package main

// EnableANSI is a no-op outside Windows, every other supported terminal
// understands the escape codes as-is.
func EnableANSI() {}
