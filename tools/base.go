// Package tools exposes the analysis operations as agent tools. Every tool
// declares one of the models request schemas; the registry validates input
// against it before the tool runs.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/forhad-fhj/SkillBridge/models"
)

// ErrUnknownTool is returned by Call for names that were never registered
var ErrUnknownTool = errors.New("unknown tool")

// Tool is one analysis operation callable by an agent
type Tool interface {
	// Name is the identifier agents call the tool by
	Name() string

	// Description tells the agent when to use the tool
	Description() string

	// Schema names the models schema the input must satisfy
	Schema() string

	// Run executes the tool on schema-valid input. A *models.InputError
	// marks a rejected argument.
	Run(ctx context.Context, input json.RawMessage) (interface{}, error)
}

// Definition describes a tool in function-calling format
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Result is the outcome of a tool call. Field names the rejected input when
// the call failed on bad arguments.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Field   string          `json:"field,omitempty"`
}

// Registry holds the tools exposed to agents
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Names must be unique and the tool's schema must exist.
func (r *Registry) Register(tool Tool) error {
	if _, exists := r.tools[tool.Name()]; exists {
		return fmt.Errorf("tool %s already registered", tool.Name())
	}
	if _, err := models.SchemaDocument(tool.Schema()); err != nil {
		return fmt.Errorf("tool %s: %w", tool.Name(), err)
	}
	r.tools[tool.Name()] = tool
	return nil
}

// Get retrieves a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name
func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// Definitions returns the registered tools with their input schemas
func (r *Registry) Definitions() []Definition {
	registered := r.List()
	definitions := make([]Definition, 0, len(registered))
	for _, tool := range registered {
		// Register checked the schema exists
		schema, _ := models.SchemaDocument(tool.Schema())
		definitions = append(definitions, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: schema,
		})
	}
	return definitions
}

// Call validates input against the tool's schema and runs it. Only an
// unknown name is returned as an error; tool failures come back in the Result.
func (r *Registry) Call(ctx context.Context, name string, input json.RawMessage) (Result, error) {
	tool, ok := r.tools[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}

	if err := models.ValidatePayload(tool.Schema(), input); err != nil {
		log.Printf("[Tools] %s rejected input: %v", name, err)
		return failure("invalid input", err), nil
	}

	data, err := tool.Run(ctx, input)
	if err != nil {
		log.Printf("[Tools] %s failed: %v", name, err)
		return failure(name+" failed", err), nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return failure("failed to encode result", err), nil
	}
	return Result{Success: true, Data: encoded}, nil
}

// failure builds a failed Result. Input errors are reported with their field.
func failure(message string, err error) Result {
	result := Result{Error: fmt.Sprintf("%s: %v", message, err)}
	var inputErr *models.InputError
	if errors.As(err, &inputErr) {
		result.Error = fmt.Sprintf("invalid input: %v", err)
		result.Field = inputErr.Field
	}
	return result
}

// decode unmarshals schema-valid input into a request
func decode(input json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(input, out); err != nil {
		return &models.InputError{Message: err.Error()}
	}
	return nil
}
