package commands

import (
	"fmt"
	"sync"

	"github.com/benrod3k/hostobj/object"
	"github.com/benrod3k/hostobj/store"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

var (
	storeMu     sync.Mutex
	storeDir    = "."
	activeStore *store.Store
)

// SetStoreDir sets the directory the document store opens from. It should be
// called before the first command runs (cli config or server startup).
func SetStoreDir(dir string) {
	storeMu.Lock()
	defer storeMu.Unlock()
	if dir != "" && dir != storeDir {
		storeDir = dir
		activeStore = nil
	}
}

// SetStore injects an already-open store, replacing lazy opening. Used by
// tests and embedded callers.
func SetStore(s *store.Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	activeStore = s
}

// GetStore returns the document store, opening it on first use.
func GetStore() (*store.Store, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	if activeStore != nil {
		return activeStore, nil
	}

	s, err := store.Open(storeDir)
	if err != nil {
		return nil, fmt.Errorf("error opening store: %w", err)
	}
	activeStore = s
	return s, nil
}

// FindObject resolves a named object from the store.
func FindObject(name string) (*object.MapObject, error) {
	if name == "" {
		return nil, fmt.Errorf("object name is required")
	}

	s, err := GetStore()
	if err != nil {
		return nil, err
	}
	return s.Object(name)
}
