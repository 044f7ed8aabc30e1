// SPDX-License-Identifier: EPL-2.0

// Package estimate predicts the size of an exported selection from its
// length and the target bitrate, for display before the export runs.
package estimate
