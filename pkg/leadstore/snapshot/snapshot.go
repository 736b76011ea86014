package snapshot

// Store is the persistence port of the lead store: one opaque blob per
// snapshot key. Implementations decide where the blob lives (memory, file,
// Postgres row, Redis key, S3 object); the lead store only ever reads the
// whole blob at startup and rewrites it after every mutation.
type Store interface {
	// Load returns the current blob. ok is false when no snapshot has been
	// written yet, which is not an error.
	Load() (data []byte, ok bool, err error)
	// Save replaces the blob atomically from the caller's point of view.
	Save(data []byte) error
}

// Memory keeps the blob in process memory. Used in tests and as the fallback
// backend when no persistence is configured.
type Memory struct {
	data []byte
	set  bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() ([]byte, bool, error) {
	if !m.set {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

func (m *Memory) Save(data []byte) error {
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}
