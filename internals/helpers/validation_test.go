package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name   string   `json:"name" validate:"required,max=5"`
	Kind   string   `json:"kind" validate:"omitempty,oneof=simulado avaliacao_final"`
	Link   string   `json:"link" validate:"omitempty,url"`
	Labels []string `json:"labels" validate:"omitempty,dive,required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleRequest{Name: "ok", Kind: "simulado", Link: "https://x.io"}))
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Kind: "quiz", Link: "nope"})

	assert.Equal(t, []string{"name is required"}, errs["name"])
	assert.Equal(t, []string{"kind must be one of: simulado avaliacao_final"}, errs["kind"])
	assert.Equal(t, []string{"link must be a valid url"}, errs["link"])
}

func TestValidateStruct_Max(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Name: "toolong"})
	assert.Equal(t, []string{"name must be at most 5"}, errs["name"])
}

func TestMergeFieldErrors(t *testing.T) {
	assert.Nil(t, MergeFieldErrors(nil, nil))

	got := MergeFieldErrors(nil, map[string][]string{"a": {"x"}})
	assert.Equal(t, map[string][]string{"a": {"x"}}, got)

	got = MergeFieldErrors(map[string][]string{"a": {"x"}}, map[string][]string{"a": {"y"}, "b": {"z"}})
	assert.Equal(t, map[string][]string{"a": {"x", "y"}, "b": {"z"}}, got)
}
