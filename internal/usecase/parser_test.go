package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udaanx/coldflow/internal/entity"
	"github.com/udaanx/coldflow/internal/usecase"
)

func TestParseLeadsDropsMalformedRows(t *testing.T) {
	raw := "Email,Name\na@x.com,Alice\nbad-row\nb@y.com,Bob\n"

	result := usecase.ParseLeads(raw)

	assert.Equal(t, []entity.Lead{
		{Email: "a@x.com", Name: "Alice"},
		{Email: "b@y.com", Name: "Bob"},
	}, result.Leads)
	assert.Equal(t, 1, result.Dropped)
}

func TestParseLeadsExcludesHeader(t *testing.T) {
	result := usecase.ParseLeads("Email,Name\nreal@lead.com,Real\n")

	assert.Len(t, result.Leads, 1)
	for _, lead := range result.Leads {
		assert.NotEqual(t, "Email", lead.Email)
	}
}

func TestParseLeadsDefaultsMissingName(t *testing.T) {
	result := usecase.ParseLeads("Email,Name\nno-name@x.com\nblank-name@x.com, \n")

	assert.Equal(t, []entity.Lead{
		{Email: "no-name@x.com", Name: "Prospect"},
		{Email: "blank-name@x.com", Name: "Prospect"},
	}, result.Leads)
	assert.Equal(t, 0, result.Dropped)
}

func TestParseLeadsSkipsBlankLines(t *testing.T) {
	result := usecase.ParseLeads("\n\nEmail,Name\n\na@x.com,Alice\n   \nb@y.com,Bob\n\n")

	assert.Len(t, result.Leads, 2)
	assert.Equal(t, 0, result.Dropped)
}

func TestParseLeadsTrimsFields(t *testing.T) {
	result := usecase.ParseLeads("Email,Name\n  padded@x.com ,  Padded Name \n")

	assert.Equal(t, []entity.Lead{{Email: "padded@x.com", Name: "Padded Name"}}, result.Leads)
}

func TestParseLeadsNeverEmitsInvalidEmails(t *testing.T) {
	raw := strings.Join([]string{
		"Email,Name",
		"good@x.com,Good",
		",Empty Email",
		"no-at-sign,Bad",
		"   ,Whitespace",
		"also-good@y.com",
	}, "\n")

	result := usecase.ParseLeads(raw)

	for _, lead := range result.Leads {
		assert.NotEmpty(t, lead.Email)
		assert.Contains(t, lead.Email, "@")
	}
	assert.Len(t, result.Leads, 2)
	assert.Equal(t, 3, result.Dropped)
}

func TestParseLeadsPreservesInputOrder(t *testing.T) {
	result := usecase.ParseLeads("Email,Name\nfirst@x.com,First\nsecond@x.com,Second\nthird@x.com,Third\n")

	assert.Equal(t, "first@x.com", result.Leads[0].Email)
	assert.Equal(t, "second@x.com", result.Leads[1].Email)
	assert.Equal(t, "third@x.com", result.Leads[2].Email)
}

func TestParseLeadsEmptyInput(t *testing.T) {
	assert.Empty(t, usecase.ParseLeads("").Leads)
	assert.Empty(t, usecase.ParseLeads("\n\n\n").Leads)

	// A lone header yields nothing to import
	result := usecase.ParseLeads("Email,Name\n")
	assert.Empty(t, result.Leads)
	assert.Equal(t, 0, result.Dropped)
}
