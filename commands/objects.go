package commands

import (
	"github.com/benrod3k/hostobj/object"
)

// ObjectsCommand lists the documents available in the store
func ObjectsCommand() *CommandResponse {
	s, err := GetStore()
	if err != nil {
		return NewErrorResponse(err)
	}

	names, err := s.List()
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"objects": names,
	})
}

// DumpCommand materializes a named object as a plain document
func DumpCommand(name string) *CommandResponse {
	obj, err := FindObject(name)
	if err != nil {
		return NewErrorResponse(err)
	}

	doc, err := object.Dump(obj)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"object":     name,
		"properties": doc,
	})
}

// SaveCommand persists a named object back to disk
func SaveCommand(name string) *CommandResponse {
	s, err := GetStore()
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := s.Save(name); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"object": name,
	})
}
