// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources and on-disk fixtures for
// tests.
package audiotest
