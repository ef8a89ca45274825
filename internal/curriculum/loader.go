package curriculum

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content.json
var defaultContent []byte

// contentDoc mirrors the JSON content format.
type contentDoc struct {
	Version int       `json:"version"`
	Units   []unitDoc `json:"units"`
}

type unitDoc struct {
	Number   int          `json:"number"`
	Title    string       `json:"title"`
	Sections []sectionDoc `json:"sections"`
}

type sectionDoc struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Nodes       []nodeDoc `json:"nodes"`
}

type nodeDoc struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	XPReward  int           `json:"xp_reward"`
	Questions []questionDoc `json:"questions"`
}

type questionDoc struct {
	ID             string   `json:"id"`
	Sentence       string   `json:"sentence"`
	Instruction    string   `json:"instruction"`
	AvailableWords []string `json:"available_words"`
	CorrectAnswer  []string `json:"correct_answer"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the content JSON Schema exactly once.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(contentSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal content schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("parse content schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("content.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("content.schema.json")
	})
	return compiledSchema, schemaErr
}

// LoadBytes parses, schema-validates, and structurally validates a
// content document, returning the Curriculum it describes.
func LoadBytes(data []byte) (*Curriculum, error) {
	sch, err := compileSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid content JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("content schema validation: %w", err)
	}

	var doc contentDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	units := make([]Unit, 0, len(doc.Units))
	for _, u := range doc.Units {
		unit := Unit{Number: u.Number, Title: u.Title}
		for _, s := range u.Sections {
			sec := Section{ID: s.ID, Title: s.Title, Description: s.Description}
			for _, n := range s.Nodes {
				node := Node{ID: n.ID, Title: n.Title, XPReward: n.XPReward}
				for _, q := range n.Questions {
					node.Questions = append(node.Questions, Question(q))
				}
				sec.Nodes = append(sec.Nodes, node)
			}
			unit.Sections = append(unit.Sections, sec)
		}
		units = append(units, unit)
	}

	return New(units)
}

// LoadFile loads a curriculum from a content file on disk.
func LoadFile(path string) (*Curriculum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	c, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the curriculum embedded in the binary.
func Default() (*Curriculum, error) {
	return LoadBytes(defaultContent)
}
