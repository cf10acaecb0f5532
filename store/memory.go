package store

// Memory is an in-memory DB used in tests and as a scratch store.
type Memory struct {
	values map[Key][]byte
}

// NewMemory returns an empty in-memory DB.
func NewMemory() *Memory {
	return &Memory{values: make(map[Key][]byte)}
}

func (m *Memory) Get(key Key) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(key Key, value []byte) error {
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(key Key) error {
	delete(m.values, key)
	return nil
}

func (m *Memory) Size() (int, error) {
	var total int
	for _, v := range m.values {
		total += len(v)
	}

	return total, nil
}

func (m *Memory) Close() error {
	return nil
}
