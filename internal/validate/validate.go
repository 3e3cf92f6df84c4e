package validate

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	VoiceUpload = "voice_upload"
	ImageUpload = "image_upload"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

var (
	once    sync.Once
	schemas map[string]*jsonschema.Schema
	loadErr error
)

func load() {
	c := jsonschema.NewCompiler()
	out := map[string]*jsonschema.Schema{}
	for _, name := range []string{VoiceUpload, ImageUpload} {
		file := "schema/" + name + ".schema.json"
		b, err := schemaFS.ReadFile(file)
		if err != nil {
			loadErr = err
			return
		}
		url := "mem://" + file
		if err := c.AddResource(url, bytes.NewReader(b)); err != nil {
			loadErr = err
			return
		}
		s, err := c.Compile(url)
		if err != nil {
			loadErr = err
			return
		}
		out[name] = s
	}
	schemas = out
}

// Payload checks a raw JSON request body against the named schema.
func Payload(name string, raw []byte) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	s, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return s.Validate(v)
}
