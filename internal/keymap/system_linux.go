//go:build linux

package keymap

// hostOS is the compile-time host-OS tag spec.md §4.F requires: the
// system filter compares every context's declared system= value
// against this constant.
const hostOS = "Linux"
