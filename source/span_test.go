package source

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSpanMerge(t *testing.T) {
	tests := []struct {
		name     string
		left     Span
		right    Span
		expected Span
	}{
		{
			name:     "disjoint on one line",
			left:     NewSpan(1, 3, 2),
			right:    NewSpan(1, 9, 4),
			expected: Span{Start: Position{Line: 1, Column: 3}, End: Position{Line: 1, Column: 13}},
		},
		{
			name:     "order independent",
			left:     NewSpan(1, 9, 4),
			right:    NewSpan(1, 3, 2),
			expected: Span{Start: Position{Line: 1, Column: 3}, End: Position{Line: 1, Column: 13}},
		},
		{
			name:     "across lines",
			left:     NewSpan(2, 5, 3),
			right:    NewSpan(4, 1, 6),
			expected: Span{Start: Position{Line: 2, Column: 5}, End: Position{Line: 4, Column: 7}},
		},
		{
			name:     "contained span is absorbed",
			left:     Span{Start: Position{Line: 1, Column: 1}, End: Position{Line: 5, Column: 1}},
			right:    NewSpan(3, 4, 2),
			expected: Span{Start: Position{Line: 1, Column: 1}, End: Position{Line: 5, Column: 1}},
		},
		{
			name:     "zero left is identity",
			left:     Span{},
			right:    NewSpan(7, 2, 1),
			expected: NewSpan(7, 2, 1),
		},
		{
			name:     "zero right is identity",
			left:     NewSpan(7, 2, 1),
			right:    Span{},
			expected: NewSpan(7, 2, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.left.Merge(tt.right))
		})
	}
}

func TestSpanString(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected string
	}{
		{
			name:     "single line",
			span:     NewSpan(3, 5, 4),
			expected: "3:5-9",
		},
		{
			name:     "multi line",
			span:     Span{Start: Position{Line: 3, Column: 5}, End: Position{Line: 4, Column: 2}},
			expected: "3:5-4:2",
		},
		{
			name:     "zero",
			span:     Span{},
			expected: "0:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.span.String())
		})
	}
}

func TestPositionBefore(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 9}.Before(Position{Line: 2, Column: 1}))
	assert.True(t, Position{Line: 2, Column: 1}.Before(Position{Line: 2, Column: 2}))
	assert.False(t, Position{Line: 2, Column: 2}.Before(Position{Line: 2, Column: 2}))
	assert.False(t, Position{Line: 3, Column: 1}.Before(Position{Line: 2, Column: 9}))
}
