package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Problem is the normalized form of a catalog entry. The judge exposes
// problems with wildly varying field names; everything the client cares
// about is resolved through the alias lists below at decode time.
type Problem struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Statement    string `json:"statement"`
	InputFormat  string `json:"input_format"`
	OutputFormat string `json:"output_format"`
	SampleInput  string `json:"sample_input"`
	SampleOutput string `json:"sample_output"`
	Category     string `json:"category"`
	Level        string `json:"level"`
	Points       int    `json:"points"`
}

// Alias lists for problem fields, evaluated in priority order: the first
// rule that resolves to a present, non-empty value wins. A rule is a
// dot-separated path; numeric segments index into arrays, so
// "examples.0.input" reads examples[0].input.
var (
	IDAliases           = []string{"id", "problem_id", "pid"}
	TitleAliases        = []string{"title", "name"}
	StatementAliases    = []string{"statement", "description", "problem"}
	InputFormatAliases  = []string{"input_format", "inputFormat", "input_description"}
	OutputFormatAliases = []string{"output_format", "outputFormat", "output_description"}
	SampleInputAliases  = []string{
		"sample_input", "sampleInput", "input_sample", "sample_in",
		"example_input", "input_example", "examples.0.input", "samples.0.input",
	}
	SampleOutputAliases = []string{
		"sample_output", "sampleOutput", "output_sample", "sample_out",
		"example_output", "output_example", "examples.0.output", "samples.0.output",
	}
	CategoryAliases = []string{"category", "topic"}
	LevelAliases    = []string{"level", "difficulty"}
	PointsAliases   = []string{"points", "score"}
)

// DecodeProblems parses the body of GET /api/problems. The endpoint is
// served either as a bare array or wrapped in a "problems" key (with or
// without the "ok" envelope).
func DecodeProblems(data []byte) ([]Problem, error) {
	var items []json.RawMessage

	var wrapped struct {
		Problems []json.RawMessage `json:"problems"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Problems != nil {
		items = wrapped.Problems
	} else if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("response is not a problem collection: %w", err)
	}

	problems := make([]Problem, 0, len(items))
	for _, item := range items {
		p, err := DecodeProblem(item)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}

// DecodeProblem normalizes a single problem-like JSON object.
func DecodeProblem(data []byte) (Problem, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Problem{}, fmt.Errorf("problem entry is not an object: %w", err)
	}

	id, _ := strconv.Atoi(FirstAlias(raw, IDAliases))
	points, _ := strconv.Atoi(FirstAlias(raw, PointsAliases))

	return Problem{
		ID:           id, // unparsable identifiers sort as 0
		Title:        FirstAlias(raw, TitleAliases),
		Statement:    FirstAlias(raw, StatementAliases),
		InputFormat:  FirstAlias(raw, InputFormatAliases),
		OutputFormat: FirstAlias(raw, OutputFormatAliases),
		SampleInput:  FirstAlias(raw, SampleInputAliases),
		SampleOutput: FirstAlias(raw, SampleOutputAliases),
		Category:     FirstAlias(raw, CategoryAliases),
		Level:        FirstAlias(raw, LevelAliases),
		Points:       points,
	}, nil
}

// FirstAlias evaluates the alias rules in order and returns the first
// present non-empty value, rendered as a string.
func FirstAlias(raw map[string]any, aliases []string) string {
	for _, path := range aliases {
		if v, ok := lookupPath(raw, path); ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func lookupPath(raw map[string]any, path string) (any, bool) {
	var cur any = raw
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return ""
	}
}
