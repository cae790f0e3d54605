// SPDX-License-Identifier: EPL-2.0

// Package openal implements al.Context on top of the native OpenAL library
// and its EFX extension.
//
// The binding is compiled only with the openal build tag and cgo enabled:
//
//	go build -tags openal ./...
//
// It links through pkg-config (openal), which OpenAL Soft provides. Without
// the tag the package still builds, but Current returns a context that is
// never valid, so every ears operation degrades to its documented
// no-context behavior.
//
// Device and context creation are left to the application: Current wraps
// whatever ALC context is current on the process.
package openal
