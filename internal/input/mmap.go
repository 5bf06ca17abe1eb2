package input

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultMmapThreshold is the file size at which the adaptive reader
// switches from buffered reads to mmap.
const DefaultMmapThreshold = 1 << 20

// NewAdaptiveReader returns a Reader that opens a file once, sizes it
// via fstat, and picks buffered read or mmap based on the threshold.
// A threshold <= 0 selects the default.
func NewAdaptiveReader(mmapThreshold int64) Reader {
	if mmapThreshold <= 0 {
		mmapThreshold = DefaultMmapThreshold
	}
	return &adaptiveReader{threshold: mmapThreshold}
}

type adaptiveReader struct {
	threshold int64
}

func (r *adaptiveReader) Read(path string) (ReadResult, error) {
	fd, size, err := openAndSize(path)
	if err != nil {
		return ReadResult{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}
	if size >= r.threshold {
		return readMmap(fd, size)
	}
	return readBuffered(fd, size)
}

// readMmap memory-maps an already-open fd of known size, with sequential
// access hints. Falls back to a buffered read if mmap fails.
func readMmap(fd int, size int64) (ReadResult, error) {
	unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)

	data, err := syscall.Mmap(fd, 0, int(size), syscall.PROT_READ, syscall.MAP_PRIVATE|syscall.MAP_POPULATE)
	if err != nil {
		return readBuffered(fd, size)
	}
	unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return ReadResult{
		Data: data,
		Closer: func() error {
			unix.Madvise(data, unix.MADV_DONTNEED)
			syscall.Munmap(data)
			unix.Close(fd)
			return nil
		},
	}, nil
}
