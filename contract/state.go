package contract

// State is the kv surface the hosting runtime gives the program. Values are
// raw strings; the codec layer decides what goes in them.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// singleton state used everywhere; the dispatcher swaps in a session overlay
// for the duration of one instruction.
var state State

// InitState wires the backing store. The local runner and tests pass their
// own implementations; on chain the wasm binding installs the host store.
func InitState(s State) {
	state = s
}

// getState returns the current store (session overlay during a handler).
func getState() State {
	return state
}

// stateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func stateSetIfChanged(key, value string) {
	if existing := getState().Get(key); existing != nil && *existing == value {
		return
	}
	getState().Set(key, value)
}

// MemState is the in-memory store used by tests and the local runner.
type MemState struct {
	db map[string]string
}

// NewMemState starts with an empty map, nothing else to set up.
func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

func (m *MemState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemState) Delete(key string) {
	delete(m.db, key)
}

// Snapshot copies out the full map, used by the file-backed runner store.
func (m *MemState) Snapshot() map[string]string {
	out := make(map[string]string, len(m.db))
	for k, v := range m.db {
		out[k] = v
	}
	return out
}

// Load replaces the backing map wholesale.
func (m *MemState) Load(db map[string]string) {
	m.db = make(map[string]string, len(db))
	for k, v := range db {
		m.db[k] = v
	}
}

// sessionState buffers one transaction's writes over a base store. Reads see
// pending writes first; commit flushes them in one pass, and dropping the
// session discards everything. That is the whole-transaction atomicity the
// handlers rely on.
type sessionState struct {
	base State
	// pending maps key -> value; a nil entry is a pending delete.
	pending map[string]*string
}

func newSession(base State) *sessionState {
	return &sessionState{base: base, pending: make(map[string]*string)}
}

func (s *sessionState) Set(key, value string) {
	v := value
	s.pending[key] = &v
}

func (s *sessionState) Get(key string) *string {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return nil
		}
		val := *v
		return &val
	}
	return s.base.Get(key)
}

func (s *sessionState) Delete(key string) {
	s.pending[key] = nil
}

// commit applies the buffered writes to the base store.
func (s *sessionState) commit() {
	for k, v := range s.pending {
		if v == nil {
			s.base.Delete(k)
		} else {
			s.base.Set(k, *v)
		}
	}
	s.pending = make(map[string]*string)
}
