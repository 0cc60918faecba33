package command

import (
	"context"
	"os"
	"sync"
)

// MockRunner records invocations instead of executing them. It is used by
// tests that exercise pipes without the macOS toolchain.
type MockRunner struct {
	mu    sync.Mutex
	calls []Invocation

	// Outputs holds canned output per tool name.
	Outputs map[string]string
	// Errors makes every call to the named tool fail with the given error.
	Errors map[string]error
	// OnRun, when set, is called for every invocation after it is recorded.
	// A non-nil return is passed back to the caller.
	OnRun func(name string, args []string) error
}

// NewMockRunner returns an empty MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// Run implements Runner.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Invocation{Name: name, Args: append([]string(nil), args...)})
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[name]; ok {
		return m.Outputs[name], err
	}
	if m.OnRun != nil {
		if err := m.OnRun(name, args); err != nil {
			return m.Outputs[name], err
		}
	}
	return m.Outputs[name], nil
}

// Calls returns all recorded invocations in order.
func (m *MockRunner) Calls() []Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Invocation(nil), m.calls...)
}

// CallsTo returns the recorded invocations of a single tool.
func (m *MockRunner) CallsTo(name string) []Invocation {
	var matched []Invocation
	for _, c := range m.Calls() {
		if c.Name == name {
			matched = append(matched, c)
		}
	}
	return matched
}

// CreateOutputFiles makes every invocation write a placeholder to the path
// following --out or -o, and to the final argument of `hdiutil create`, so
// later steps find the files the real tools would have produced. `ditto src
// dst` copies the tree without extended attributes.
func (m *MockRunner) CreateOutputFiles() {
	m.OnRun = func(name string, args []string) error {
		if name == "ditto" && len(args) == 2 {
			return os.CopyFS(args[1], os.DirFS(args[0]))
		}
		for i, a := range args {
			if (a == "--out" || a == "-o") && i+1 < len(args) {
				return os.WriteFile(args[i+1], []byte(name), 0644)
			}
		}
		if name == "hdiutil" && len(args) > 0 && args[0] == "create" {
			return os.WriteFile(args[len(args)-1], []byte(name), 0644)
		}
		return nil
	}
}
