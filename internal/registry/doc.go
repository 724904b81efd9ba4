// Package registry loads and resolves denomination systems.
//
// The built-in sterling system is always registered. Further systems are
// declared in CUE files under a top-level "system" struct, compiled with
// the CUE Go API, NFC-normalized, and validated (carry bases of at least
// 2, unique symbols and names) before registration.
package registry
