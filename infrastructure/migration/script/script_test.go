package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableDefinition(t *testing.T, table string) string {
	t.Helper()

	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	require.NotEqual(t, -1, start, "tabela %s ausente", table)

	end := strings.Index(schema[start:], ");")
	require.NotEqual(t, -1, end)

	return schema[start : start+end]
}

func TestSchema_TrendingProductsAceitaTextoLivreDoModelo(t *testing.T) {
	definition := tableDefinition(t, "trending_products")

	for _, column := range []string{"name", "category", "trend", "reason", "avg_engagement"} {
		t.Run(column, func(t *testing.T) {
			assert.Regexp(t, regexp.MustCompile(`(?m)^\s+`+column+`\s+TEXT\b`), definition)
		})
	}

	assert.Regexp(t, regexp.MustCompile(`(?m)^\s+score\s+NUMERIC\s+NOT NULL`), definition)
	assert.NotContains(t, definition, "NUMERIC(")
}

func TestSchema_LinhasSempreTemDono(t *testing.T) {
	for _, table := range []string{"ads", "trending_products"} {
		t.Run(table, func(t *testing.T) {
			definition := tableDefinition(t, table)
			assert.Regexp(t, regexp.MustCompile(`user_id\s+UUID\s+NOT NULL REFERENCES users \(id\)`), definition)
		})
	}
}
