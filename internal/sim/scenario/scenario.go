package scenario

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"ticksim.ai/internal/input"
	"ticksim.ai/internal/sim/chain"
	"ticksim.ai/internal/sim/queue"
)

const (
	DefaultRounds = 20
	DefaultKnots  = 2
)

//go:embed scenario.schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

type Scenario struct {
	Name  string     `yaml:"name"`
	Queue *QueueSpec `yaml:"queue,omitempty"`
	Chain *ChainSpec `yaml:"chain,omitempty"`
}

type QueueSpec struct {
	Rounds int `yaml:"rounds"`
	// Reducer applies to every monkey that does not set its own.
	Reducer *queue.Reducer      `yaml:"reducer,omitempty"`
	Monkeys []queue.ActorConfig `yaml:"monkeys"`
}

type ChainSpec struct {
	Knots int      `yaml:"knots"`
	Moves []string `yaml:"moves"`
}

func Load(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	s, err := Parse(b)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates raw against the scenario schema, decodes it, applies
// defaults and checks cross-field constraints.
func Parse(raw []byte) (Scenario, error) {
	var s Scenario
	if err := validateSchema(raw); err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("scenario yaml: %w", err)
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Scenario) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	if q := s.Queue; q != nil {
		if q.Rounds <= 0 {
			q.Rounds = DefaultRounds
		}
		if q.Reducer == nil {
			r := queue.DefaultReducer
			q.Reducer = &r
		}
	}
	if c := s.Chain; c != nil && c.Knots <= 0 {
		c.Knots = DefaultKnots
	}
}

func (s Scenario) Validate() error {
	if (s.Queue == nil) == (s.Chain == nil) {
		return errors.New("scenario needs exactly one of queue or chain")
	}
	if s.Queue != nil {
		if _, err := queue.New(s.Queue.Actors()); err != nil {
			return fmt.Errorf("queue: %w", err)
		}
	}
	if s.Chain != nil {
		if s.Chain.Knots < 2 {
			return fmt.Errorf("chain: %w (got %d)", chain.ErrShortChain, s.Chain.Knots)
		}
		if _, err := s.Chain.ParsedMoves(); err != nil {
			return fmt.Errorf("chain: %w", err)
		}
	}
	return nil
}

// Actors returns the monkey configs with the scenario-level reducer filled
// in where a monkey has none.
func (q QueueSpec) Actors() []queue.ActorConfig {
	out := make([]queue.ActorConfig, len(q.Monkeys))
	for i, m := range q.Monkeys {
		if m.Reducer == nil && q.Reducer != nil {
			r := *q.Reducer
			m.Reducer = &r
		}
		out[i] = m
	}
	return out
}

func (c ChainSpec) ParsedMoves() ([]input.Move, error) {
	return input.ParseMoves(strings.NewReader(strings.Join(c.Moves, "\n")))
}

func validateSchema(raw []byte) error {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("scenario.schema.json", schemaJSON)
	})
	if schemaErr != nil {
		return fmt.Errorf("compile scenario schema: %w", schemaErr)
	}

	// The validator expects JSON-decoded values.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("scenario yaml: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("scenario yaml: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("scenario schema: %w", err)
	}
	return nil
}
