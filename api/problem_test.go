package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mashrafi141/my-judge-webapp2/api"
)

func TestDecodeProblemsWrappedAndBare(t *testing.T) {
	wrapped := []byte(`{"ok":true,"problems":[{"id":"7","title":"Sums"}]}`)
	got, err := api.DecodeProblems(wrapped)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 7, got[0].ID)
	require.Equal(t, "Sums", got[0].Title)

	bare := []byte(`[{"pid":3,"name":"Echo"}]`)
	got, err = api.DecodeProblems(bare)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 3, got[0].ID)
	require.Equal(t, "Echo", got[0].Title)
}

func TestDecodeProblemsRejectsNonCollection(t *testing.T) {
	_, err := api.DecodeProblems([]byte(`"oops"`))
	require.Error(t, err)
}

func TestAliasPrecedence(t *testing.T) {
	// "id" outranks "problem_id", "statement" outranks "description".
	data := []byte(`{
		"id": 5, "problem_id": 9,
		"statement": "real", "description": "ignored"
	}`)
	p, err := api.DecodeProblem(data)
	require.NoError(t, err)
	require.Equal(t, 5, p.ID)
	require.Equal(t, "real", p.Statement)
}

func TestAliasSkipsEmptyValues(t *testing.T) {
	data := []byte(`{"title":"","name":"fallback"}`)
	p, err := api.DecodeProblem(data)
	require.NoError(t, err)
	require.Equal(t, "fallback", p.Title)
}

func TestSampleAliasNestedPath(t *testing.T) {
	data := []byte(`{
		"id": 1,
		"examples": [{"input":"1 2","output":"3"}]
	}`)
	p, err := api.DecodeProblem(data)
	require.NoError(t, err)
	require.Equal(t, "1 2", p.SampleInput)
	require.Equal(t, "3", p.SampleOutput)

	data = []byte(`{"samples":[{"input":"a","output":"b"}]}`)
	p, err = api.DecodeProblem(data)
	require.NoError(t, err)
	require.Equal(t, "a", p.SampleInput)
	require.Equal(t, "b", p.SampleOutput)
}

func TestNonNumericIDDecodesAsZero(t *testing.T) {
	p, err := api.DecodeProblem([]byte(`{"id":"abc","title":"x"}`))
	require.NoError(t, err)
	require.Equal(t, 0, p.ID)
}

func TestFlexIDAcceptsStringAndNumber(t *testing.T) {
	var resp api.SubmitResponse
	require.NoError(t, json.Unmarshal([]byte(`{"job_id":"j-42"}`), &resp))
	require.Equal(t, api.FlexID("j-42"), resp.JobID)

	require.NoError(t, json.Unmarshal([]byte(`{"job_id":42}`), &resp))
	require.Equal(t, api.FlexID("42"), resp.JobID)

	require.NoError(t, json.Unmarshal([]byte(`{"job_id":null}`), &resp))
	require.Equal(t, api.FlexID(""), resp.JobID)
}
