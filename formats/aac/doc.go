// SPDX-License-Identifier: EPL-2.0

// Package aac decodes AAC audio carried in ADTS frames, as found in .aac
// files, using the WebAssembly build of FAAD2 from github.com/llehouerou/go-faad2.
//
// The first frame is decoded while opening, so a stream that FAAD2 cannot
// initialize fails in Decode with ErrNotAdtsStream rather than on the first
// read.
package aac
