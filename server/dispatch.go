package server

import (
	"encoding/json"
	"fmt"

	"github.com/benrod3k/hostobj/commands"
	"github.com/zalando/go-keyring"
)

// Keyring slot holding the optional GitHub token used by release lookups.
const (
	KeyringService = "hostobj"
	KeyringUser    = "api.github.com"
)

// HandlerFunc is the signature for non-streaming JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and embedded clients
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"objects":               handleObjects,
		"object_dump":           handleObjectDump,
		"object_get":            handleObjectGet,
		"object_try_get":        handleObjectTryGet,
		"object_set":            handleObjectSet,
		"object_set_properties": handleObjectSetProperties,
		"object_delete":         handleObjectDelete,
		"object_save":           handleObjectSave,
		"version":               handleVersion,
		"server.shutdown":       handleShutdown,
	}
}

// Execute dispatches a method call using the registry
// This is the main entry point for embedded clients
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}

func resultOf(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleObjects(params json.RawMessage) (interface{}, error) {
	return resultOf(commands.ObjectsCommand())
}

// ObjectParams names a single object
type ObjectParams struct {
	Object string `json:"object"`
}

func handleObjectDump(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: object")
	}

	var objectParams ObjectParams
	if err := json.Unmarshal(params, &objectParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: object", err)
	}

	return resultOf(commands.DumpCommand(objectParams.Object))
}

func handleObjectGet(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: object, prop")
	}

	var getParams commands.GetRequest
	if err := json.Unmarshal(params, &getParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: object, prop, type", err)
	}
	getParams.Try = false

	return resultOf(commands.GetCommand(getParams))
}

func handleObjectTryGet(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: object, prop")
	}

	var getParams commands.GetRequest
	if err := json.Unmarshal(params, &getParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: object, prop, type", err)
	}
	getParams.Try = true

	return resultOf(commands.GetCommand(getParams))
}

func handleObjectSet(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: object, prop, value")
	}

	var setParams commands.SetRequest
	if err := json.Unmarshal(params, &setParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: object, prop, value", err)
	}

	return resultOf(commands.SetCommand(setParams))
}

func handleObjectSetProperties(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: object, props")
	}

	var setParams commands.SetPropertiesRequest
	if err := json.Unmarshal(params, &setParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: object, props", err)
	}

	return resultOf(commands.SetPropertiesCommand(setParams))
}

func handleObjectDelete(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: object, prop")
	}

	var deleteParams commands.DeleteRequest
	if err := json.Unmarshal(params, &deleteParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: object, prop", err)
	}

	return resultOf(commands.DeleteCommand(deleteParams))
}

func handleObjectSave(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: object")
	}

	var objectParams ObjectParams
	if err := json.Unmarshal(params, &objectParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: object", err)
	}

	return resultOf(commands.SaveCommand(objectParams.Object))
}

// VersionParams controls the release check
type VersionParams struct {
	Check bool `json:"check,omitempty"`
}

func handleVersion(params json.RawMessage) (interface{}, error) {
	var versionParams VersionParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &versionParams); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v. Expected fields: check", err)
		}
	}

	// token is optional; ignore keyring misses
	token, _ := keyring.Get(KeyringService, KeyringUser)

	return resultOf(commands.VersionCommand(Version, versionParams.Check, token))
}

func handleShutdown(params json.RawMessage) (interface{}, error) {
	requestShutdown()
	return okResponse, nil
}
