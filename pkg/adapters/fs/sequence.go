package fs

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// sequence is the persistent auto-increment counter behind record ids.
// It is not safe for concurrent use on its own; the store's write lock
// guards allocation.
type sequence struct {
	path string
	next int64
}

func newSequence(path string) *sequence {
	return &sequence{path: path, next: 1}
}

// load reads the persisted counter. A missing file starts the sequence at 1.
func (s *sequence) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.next = 1
		return nil
	}
	if err != nil {
		return err
	}

	n, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil || n < 1 {
		return fmt.Errorf("corrupt sequence file %s: %q", s.path, data)
	}
	s.next = n
	return nil
}

// allocate returns the next id and durably advances the counter before the
// id is handed out. Ids are never reused, even when the subsequent record
// write fails.
func (s *sequence) allocate() (int64, error) {
	id := s.next
	if err := writeFileAtomic(s.path, []byte(strconv.FormatInt(id+1, 10)+"\n"), 0644); err != nil {
		return 0, err
	}
	s.next = id + 1
	return id, nil
}

// peek reports the id the next allocation would return.
func (s *sequence) peek() int64 {
	return s.next
}
