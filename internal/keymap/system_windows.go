//go:build windows

package keymap

const hostOS = "Windows"
