package system

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockExecutor records commands and serves canned responses for tests.
type MockExecutor struct {
	mu        sync.Mutex
	commands  []MockCommand
	responses map[string]MockResponse
}

// MockCommand is one recorded invocation.
type MockCommand struct {
	Name        string
	Args        []string
	Interactive bool
	Replaced    bool
}

// MockResponse is the canned result for a command pattern.
type MockResponse struct {
	Output []byte
	Err    error
}

// NewMockExecutor creates an empty mock.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		responses: make(map[string]MockResponse),
	}
}

// AddResponse registers output for any command whose rendered form
// contains pattern.
func (m *MockExecutor) AddResponse(pattern string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[pattern] = MockResponse{Output: output, Err: err}
}

func (m *MockExecutor) lookup(name string, args []string) MockResponse {
	rendered := name + " " + strings.Join(args, " ")
	for pattern, resp := range m.responses {
		if strings.Contains(rendered, pattern) {
			return resp
		}
	}
	return MockResponse{}
}

func (m *MockExecutor) record(c MockCommand) {
	m.commands = append(m.commands, c)
}

func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(MockCommand{Name: name, Args: args})
	resp := m.lookup(name, args)
	return resp.Output, resp.Err
}

func (m *MockExecutor) ExecuteInteractive(ctx context.Context, name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(MockCommand{Name: name, Args: args, Interactive: true})
	return m.lookup(name, args).Err
}

func (m *MockExecutor) ReplaceProcess(name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(MockCommand{Name: name, Args: args, Replaced: true})
	if resp := m.lookup(name, args); resp.Err != nil {
		return resp.Err
	}
	// A real exec never returns; the mock does, so callers can assert.
	return nil
}

// Commands returns all recorded invocations.
func (m *MockExecutor) Commands() []MockCommand {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCommand, len(m.commands))
	copy(out, m.commands)
	return out
}

// LastCommand returns the most recent invocation.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.commands) == 0 {
		return MockCommand{}, false
	}
	return m.commands[len(m.commands)-1], true
}

// Reset clears recorded commands and responses.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = nil
	m.responses = make(map[string]MockResponse)
}

// String renders a command the way lookup matches it, for test output.
func (c MockCommand) String() string {
	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}
