package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed command.schema.json
var commandSchemaJSON string

const commandSchemaURL = "https://jurassic-game/schemas/command.schema.json"

var (
	commandSchemaOnce sync.Once
	commandSchema     *jsonschema.Schema
	commandSchemaErr  error
)

func compiledCommandSchema() (*jsonschema.Schema, error) {
	commandSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(commandSchemaURL, strings.NewReader(commandSchemaJSON)); err != nil {
			commandSchemaErr = err
			return
		}
		commandSchema, commandSchemaErr = c.Compile(commandSchemaURL)
	})
	return commandSchema, commandSchemaErr
}

// DecodeCommand validates a raw client frame against the command schema
// and decodes it. Payload-level checks (Validator) happen in the handlers.
func DecodeCommand(raw []byte) (ClientCommand, error) {
	var cmd ClientCommand

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cmd, fmt.Errorf("malformed json: %w", err)
	}
	s, err := compiledCommandSchema()
	if err != nil {
		return cmd, fmt.Errorf("command schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return cmd, fmt.Errorf("invalid command: %w", err)
	}
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return cmd, fmt.Errorf("decode command: %w", err)
	}
	return cmd, nil
}
