//go:build !mobile

// Package mobile only builds with the mobile tag.
package mobile
