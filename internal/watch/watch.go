// Package watch delivers file-change events for landscape files using
// raw inotify + epoll. A multiline pattern is position-sensitive, so
// consumers re-read the whole file on every modification rather than
// tailing appended bytes.
package watch

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"
)

// EventType identifies the kind of file change.
type EventType int

const (
	EventModified EventType = iota
	EventCreated
	EventDeleted
)

// Event is one file change.
type Event struct {
	Path string
	Type EventType
	Err  error
}

// Watcher watches files and directories for changes.
type Watcher struct {
	inotifyFd int
	epollFd   int
	watches   map[int]string // wd -> path
	done      chan struct{}
}

// New creates an inotify-based watcher.
func New() (*Watcher, error) {
	ifd, err := unix.InotifyInit1(unix.IN_CLOEXEC | unix.IN_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("inotify_init1: %w", err)
	}

	efd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		unix.Close(ifd)
		return nil, fmt.Errorf("epoll_create1: %w", err)
	}

	event := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(ifd)}
	if err := unix.EpollCtl(efd, unix.EPOLL_CTL_ADD, ifd, &event); err != nil {
		unix.Close(efd)
		unix.Close(ifd)
		return nil, fmt.Errorf("epoll_ctl: %w", err)
	}

	return &Watcher{
		inotifyFd: ifd,
		epollFd:   efd,
		watches:   make(map[int]string),
		done:      make(chan struct{}),
	}, nil
}

// Add watches a file or directory. Directory watches report new and
// modified files inside it.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	mask := uint32(unix.IN_MODIFY | unix.IN_CREATE | unix.IN_MOVED_TO | unix.IN_MOVE_SELF | unix.IN_DELETE_SELF)
	wd, err := unix.InotifyAddWatch(w.inotifyFd, absPath, mask)
	if err != nil {
		return fmt.Errorf("inotify_add_watch %s: %w", absPath, err)
	}
	w.watches[wd] = absPath
	return nil
}

// Events returns a channel of file events. The channel closes when
// Close is called.
func (w *Watcher) Events() <-chan Event {
	ch := make(chan Event, 64)
	go func() {
		defer close(ch)
		buf := make([]byte, 4096)
		events := make([]unix.EpollEvent, 1)

		for {
			select {
			case <-w.done:
				return
			default:
			}

			n, err := unix.EpollWait(w.epollFd, events, 100)
			if err != nil {
				if err == unix.EINTR {
					continue
				}
				ch <- Event{Err: fmt.Errorf("epoll_wait: %w", err)}
				return
			}
			if n == 0 {
				continue
			}

			nbytes, err := unix.Read(w.inotifyFd, buf)
			if err != nil {
				if err == unix.EAGAIN {
					continue
				}
				ch <- Event{Err: fmt.Errorf("read inotify: %w", err)}
				return
			}

			w.emitEvents(buf[:nbytes], ch)
		}
	}()
	return ch
}

// emitEvents decodes raw inotify records and forwards them as Events.
func (w *Watcher) emitEvents(buf []byte, ch chan<- Event) {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buf) {
		raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
		nameLen := int(raw.Len)

		var name string
		if nameLen > 0 {
			end := offset + unix.SizeofInotifyEvent + nameLen
			if end > len(buf) {
				break
			}
			nameBytes := buf[offset+unix.SizeofInotifyEvent : end]
			name = string(trimNUL(nameBytes))
		}
		offset += unix.SizeofInotifyEvent + nameLen

		path := w.watches[int(raw.Wd)]
		if name != "" {
			path = filepath.Join(path, name)
		}

		switch {
		case raw.Mask&(unix.IN_CREATE|unix.IN_MOVED_TO) != 0:
			ch <- Event{Path: path, Type: EventCreated}
		case raw.Mask&unix.IN_MODIFY != 0:
			ch <- Event{Path: path, Type: EventModified}
		case raw.Mask&(unix.IN_DELETE_SELF|unix.IN_MOVE_SELF) != 0:
			ch <- Event{Path: path, Type: EventDeleted}
		}
	}
}

func trimNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// Close stops the watcher and releases its file descriptors.
func (w *Watcher) Close() error {
	close(w.done)
	unix.Close(w.epollFd)
	return unix.Close(w.inotifyFd)
}
