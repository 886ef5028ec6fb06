package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil slice", nil, nil},
		{"split of an empty variable", []string{""}, []string{}},
		{"broker list", []string{"kafka-1:9092", " kafka-2:9092 ", "kafka-1:9092"}, []string{"kafka-1:9092", "kafka-2:9092"}},
		{"origins keep case", []string{"https://A.example", "https://a.example"}, []string{"https://A.example", "https://a.example"}},
		{"blank items dropped", []string{"*", "  ", ""}, []string{"*"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
