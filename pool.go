package tlsf

import "unsafe"

// Pool is the top-level allocator state: the control structure that
// lives at the base of a caller-supplied region, plus every area
// chained off it. A *Pool is always a pointer into the region it
// manages — there is no separate Go-heap-side bookkeeping object, so
// the region alone is enough to reopen a pool (see Init).
type Pool struct {
	signature uint32

	usedSize int64
	maxSize  int64

	areaHead *AreaInfo

	flBitmap uint32
	slBitmap [RealFLI]uint32
	matrix   [RealFLI][MaxSLI]*FreeBlockHeader
}

// poolHeaderSize is the size of the control structure itself, before
// any alignment padding applied to the area that follows it.
const poolHeaderSize = int64(unsafe.Sizeof(Pool{}))

// minRegionSize is the smallest region Init will accept: room for the
// control structure plus eight blocks' worth of header overhead (spec §4.5).
const minRegionSize = poolHeaderSize + 8*BlockHeaderSize

// Init lays down a control structure at the base of region and carves
// the remainder into the pool's first area, or — if region already
// carries the TLSF signature — treats the call as a benign reopen and
// just reports the first usable block's size without touching any
// state. Returns the size of the first usable block.
func Init(region []byte) (*Pool, int64, error) {
	if len(region) == 0 {
		return nil, 0, ErrInvalidRegion
	}
	if int64(len(region)) < minRegionSize {
		return nil, 0, ErrRegionTooSmall
	}
	if uintptr(unsafe.Pointer(&region[0]))&uintptr(MemAlign) != 0 {
		return nil, 0, ErrMisaligned
	}

	base := unsafe.Pointer(&region[0])
	pool := (*Pool)(base)

	if pool.signature == tlsfSignature {
		sentinel := headerAt(base, roundUp(poolHeaderSize))
		usable := nextPhysical(sentinel)
		return pool, usable.getBlockSize(), nil
	}

	*pool = Pool{}
	pool.signature = tlsfSignature

	areaOffset := roundUp(poolHeaderSize)
	areaBytes := region[areaOffset:]

	sentinel := processArea(areaBytes)
	usable := nextPhysical(sentinel)
	usableSize := usable.getBlockSize()

	ai := (*AreaInfo)(sentinel.getPtr())
	ai.next = nil
	ai.end = nextPhysical(usable)
	pool.areaHead = ai

	pool.Free(usable.getPtr())

	// Free above subtracted the usable block from usedSize as if it had
	// previously been charged as used; override with the true
	// accounting, mirroring original_source/tlsf.c's init_memory_pool.
	pool.usedSize = int64(len(region)) - usableSize
	pool.maxSize = pool.usedSize

	return pool, usableSize, nil
}

// AddArea processes a new region into sentinel/usable/terminator, then
// merges it with any existing area it turns out to be physically
// adjacent to (on either side), before publishing the resulting usable
// block into the free-list index. Returns the size of the block added.
func (p *Pool) AddArea(area []byte) (int64, error) {
	if len(area) == 0 {
		return 0, ErrInvalidRegion
	}
	for i := range area {
		area[i] = 0
	}

	ib0 := processArea(area)
	b0 := nextPhysical(ib0)
	lb0 := nextPhysical(b0)

	var ptrPrev *AreaInfo
	ptr := p.areaHead

	for ptr != nil {
		ib1 := sentinelOf(ptr)
		b1 := nextPhysical(ib1)
		lb1 := ptr.end

		if uintptr(unsafe.Pointer(ib1)) == uintptr(unsafe.Pointer(lb0))+BlockHeaderSize {
			if p.areaHead == ptr {
				p.areaHead = ptr.next
			} else {
				ptrPrev.next = ptr.next
			}
			ptr = ptr.next

			// roundDown already zeroes the state bits; the merged block
			// keeps USED/PREV_USED implicitly.
			b0.blockSize = roundDown(b0.getBlockSize() + ib1.getBlockSize() + 2*BlockHeaderSize)
			b1.prevHeader = b0
			lb0 = lb1
			continue
		}

		if uintptr(lb1.getPtr()) == uintptr(unsafe.Pointer(ib0)) {
			if p.areaHead == ptr {
				p.areaHead = ptr.next
			} else {
				ptrPrev.next = ptr.next
			}
			ptr = ptr.next

			merged := roundDown(b0.getBlockSize() + ib0.getBlockSize() + 2*BlockHeaderSize)
			prevState := lb1.blockSize & PrevStateMask
			lb1.blockSize = merged | UsedBlock | prevState
			nextB := nextPhysical(lb1)
			nextB.prevHeader = lb1
			b0 = lb1
			ib0 = ib1
			continue
		}

		ptrPrev = ptr
		ptr = ptr.next
	}

	ai := (*AreaInfo)(ib0.getPtr())
	ai.next = p.areaHead
	ai.end = lb0
	p.areaHead = ai

	addedSize := b0.getBlockSize()

	// Free subtracts the block from usedSize as if it had been charged
	// as used; the new area never was, so usedSize stays as it was.
	used := p.usedSize
	p.Free(b0.getPtr())
	p.usedSize = used

	return addedSize, nil
}

// Destroy clears the pool's signature. The backing region may then be
// reused or released by the caller; Destroy performs no I/O itself.
func (p *Pool) Destroy() {
	p.signature = 0
}

// UsedSize returns the current used bytes, including per-block overhead.
func (p *Pool) UsedSize() int64 {
	return p.usedSize
}

// MaxSize returns the peak used bytes observed so far.
func (p *Pool) MaxSize() int64 {
	return p.maxSize
}

//go:inline
func (p *Pool) addSize(b *BlockHeader) {
	p.usedSize += b.getBlockSize() + BlockHeaderSize
	if p.usedSize > p.maxSize {
		p.maxSize = p.usedSize
	}
}

//go:inline
func (p *Pool) removeSize(b *BlockHeader) {
	p.usedSize -= b.getBlockSize() + BlockHeaderSize
}
