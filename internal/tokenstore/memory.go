package tokenstore

import "context"

// Memory is the session-scoped backend: the token lives in process memory and
// disappears when the REPL exits.
type Memory struct {
	token string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *Memory) Set(ctx context.Context, token string) error {
	m.token = token
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.token = ""
	return nil
}
