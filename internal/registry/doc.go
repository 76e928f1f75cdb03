// SPDX-License-Identifier: MPL-2.0

// Package registry models the set of pluggable commands known to crowbar.
//
// Commands are identified by a "group/name" key. Plugins are discovered from
// descriptor files under the configured plugins root; built-in commands are
// appended by the enumerator with reserved identities that can never be
// selected for ejection.
package registry
