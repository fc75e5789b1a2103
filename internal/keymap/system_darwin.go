//go:build darwin

package keymap

const hostOS = "MacOS"
