package tlsf

import "unsafe"

// Free returns the block at ptr (a pointer previously returned by
// Allocate) to the pool, coalescing unconditionally with either
// physical neighbor that is itself free. Free on a nil pointer is a
// silent no-op.
func (p *Pool) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	b := (*FreeBlockHeader)(unsafe.Add(ptr, -BlockHeaderSize))
	b.setBlockStatus(FreeBlock)
	p.removeSize(&b.BlockHeader)

	b.prev = nil
	b.next = nil

	next := nextPhysical(&b.BlockHeader)
	if next.isFree() {
		fl, sl := mapInsert(next.getBlockSize())
		nfb := (*FreeBlockHeader)(unsafe.Pointer(next))
		p.extractBlock(nfb, fl, sl)
		b.blockSize += next.getBlockSize() + BlockHeaderSize
	}

	if b.isPreviousBlockFree() {
		pfb := (*FreeBlockHeader)(unsafe.Pointer(prevPhysical(&b.BlockHeader)))
		fl, sl := mapInsert(pfb.getBlockSize())
		p.extractBlock(pfb, fl, sl)
		pfb.blockSize += b.getBlockSize() + BlockHeaderSize
		b = pfb
	}

	fl, sl := mapInsert(b.getBlockSize())
	p.insertBlock(b, fl, sl)

	next = nextPhysical(&b.BlockHeader)
	next.prevHeader = &b.BlockHeader
	next.setBlockStatus(PreviousBlockFree)
}
