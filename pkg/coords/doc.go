// SPDX-License-Identifier: MPL-2.0

// Package coords derives complete artifact coordinates from parsed project
// descriptors, applying parent inheritance for the fields Maven allows a
// child to omit (groupId and version) and rejecting descriptors that remain
// incomplete afterwards.
package coords
