// Package activityfile reads inventory documents from disk. Two
// encodings are supported: an HCL dialect with one activity block per
// emission source, and a plain JSON document mirroring the activity
// record schema. The format is picked by file extension.
package activityfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"ghg-engine/core/types"
	"ghg-engine/internal/errors"
)

// Document is a parsed inventory input file
type Document struct {
	// Name labels the inventory
	Name string `json:"name"`

	// Year is the reporting year
	Year int `json:"year,omitempty"`

	// Activities are the emission sources to calculate
	Activities []types.ActivityRecord `json:"activities"`
}

// Load reads an inventory document, dispatching on the file extension:
// .hcl for the HCL dialect, .json for JSON.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeValidation, "reading inventory file", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(src, path)
	case ".json":
		return ParseJSON(src)
	}
	return nil, errors.Validationf("unsupported inventory file extension %q (want .hcl or .json)", filepath.Ext(path))
}

// ParseJSON decodes a JSON inventory document
func ParseJSON(src []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(strings.NewReader(string(src)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.TypeValidation, "invalid inventory JSON", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func validate(doc *Document) error {
	if doc.Name == "" {
		doc.Name = "GHG Inventory"
	}
	for i := range doc.Activities {
		if err := doc.Activities[i].Validate(); err != nil {
			if domainErr, ok := err.(*errors.Error); ok {
				return domainErr.WithContext("activity_index", i)
			}
			return err
		}
	}
	return nil
}
