//go:build unix

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapRegion is backed by an anonymous private mapping, released via
// munmap. Pages returned by mmap are always at least page-aligned,
// which comfortably satisfies the pool's 16-byte alignment contract.
type mmapRegion struct {
	data []byte
}

func acquire(size int) (Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("region: size must be positive, got %d", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("region: mmap %d bytes: %w", size, err)
	}

	return &mmapRegion{data: data}, nil
}

func (r *mmapRegion) Bytes() []byte {
	return r.data
}

func (r *mmapRegion) Release() error {
	if r.data == nil {
		return nil
	}
	err := unix.Munmap(r.data)
	r.data = nil
	if err != nil {
		return fmt.Errorf("region: munmap: %w", err)
	}
	return nil
}
