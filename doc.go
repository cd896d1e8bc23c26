/* This program is free software. It comes without any warranty, to
 * the extent permitted by applicable law. You can redistribute it
 * and/or modify it under the terms of the Do What The Fuck You Want
 * To Public License, Version 2, as published by Sam Hocevar. See
 * http://sam.zoy.org/wtfpl/COPYING for more details. */

// Package tlsf implements a Two-Level Segregated Fit memory allocator
// over a caller-supplied byte region.
//
// The region holds everything: a control structure (bitmaps, free-list
// heads, area list, counters) followed by one or more areas of managed
// blocks. A block carries its own header in-band — size, free/used
// state of itself and its physical predecessor, and (when free) its
// links into a segregated free list. There is no backing Go heap
// allocator underneath the managed bytes; Init and AddArea just lay
// down headers inside whatever region the caller hands over.
//
// IMPORTANT: This package is NOT goroutine-safe.
// Concurrent access to the same Pool from multiple goroutines is not
// supported and may lead to race conditions. It is the responsibility
// of the caller to implement proper synchronization when sharing a
// Pool across goroutines. Pools that never share a region are fully
// independent of one another.
package tlsf
