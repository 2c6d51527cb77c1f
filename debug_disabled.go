//go:build warp_release

package warp

const debugEnabled = false
