package snapshotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromURN(t *testing.T) {
	tests := []struct {
		name     string
		urn      string
		expected string
	}{
		{name: "urn de campanha", urn: "urn:li:sponsoredCampaign:123", expected: "123"},
		{name: "urn de criativo", urn: "urn:li:sponsoredCreative:456", expected: "456"},
		{name: "string sem dois pontos volta inteira", urn: "123", expected: "123"},
		{name: "urn de geo", urn: "urn:li:geo:103644278", expected: "103644278"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractIDFromURN(tt.urn))
		})
	}
}

func TestResolveSegmentName(t *testing.T) {
	resolved := map[string]string{
		"urn:li:organization:1337": "ACME Corp",
		"urn:li:seniority:4":       "Sênior (API)",
	}

	tests := []struct {
		name     string
		urn      string
		expected string
	}{
		{
			name:     "nome resolvido pela API tem prioridade sobre a tabela estática",
			urn:      "urn:li:seniority:4",
			expected: "Sênior (API)",
		},
		{
			name:     "nome resolvido pela API",
			urn:      "urn:li:organization:1337",
			expected: "ACME Corp",
		},
		{
			name:     "tabela estática de senioridade",
			urn:      "urn:li:seniority:3",
			expected: "Entry",
		},
		{
			name:     "tabela estática de tamanho de empresa",
			urn:      "urn:li:companySizeRange:B",
			expected: "2-10 employees",
		},
		{
			name:     "urn desconhecida volta bruta",
			urn:      "urn:li:organization:999999",
			expected: "urn:li:organization:999999",
		},
		{
			name:     "string malformada volta bruta",
			urn:      "not-a-urn",
			expected: "not-a-urn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveSegmentName(tt.urn, resolved))
		})
	}
}

func TestResolveSegmentName_SemMapaResolvido(t *testing.T) {
	assert.Equal(t, "Entry", ResolveSegmentName("urn:li:seniority:3", nil))
}
