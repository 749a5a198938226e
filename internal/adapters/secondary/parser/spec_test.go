package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

func TestSpecParser_Parse(t *testing.T) {
	parser := NewSpecParser()

	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantLines []string
	}{
		{
			name:      "title with three lines",
			raw:       `T|a\nb\nc`,
			wantTitle: "T",
			wantLines: []string{"a", "b", "c"},
		},
		{
			name:      "blank lines are dropped",
			raw:       `T|a\n \n\nb`,
			wantTitle: "T",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "title and lines are trimmed",
			raw:       `  Intro  |  Welcome  `,
			wantTitle: "Intro",
			wantLines: []string{"Welcome"},
		},
		{
			name:      "empty body",
			raw:       "Only title|",
			wantTitle: "Only title",
			wantLines: []string{},
		},
		{
			name:      "only the first separator splits",
			raw:       `Pipes|a|b\nc`,
			wantTitle: "Pipes",
			wantLines: []string{"a|b", "c"},
		},
		{
			name:      "real newlines are not separators",
			raw:       "T|a\nb",
			wantTitle: "T",
			wantLines: []string{"a\nb"},
		},
		{
			name:      "mixed scripts pass through",
			raw:       `任务定义|目标：预测流失\nКлюч: AUC`,
			wantTitle: "任务定义",
			wantLines: []string{"目标：预测流失", "Ключ: AUC"},
		},
		{
			name:      "empty title is allowed",
			raw:       `|x`,
			wantTitle: "",
			wantLines: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := parser.Parse(tt.raw)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTitle, spec.Title)
			assert.Equal(t, tt.wantLines, spec.Lines)
		})
	}
}

func TestSpecParser_ParseMissingSeparator(t *testing.T) {
	parser := NewSpecParser()

	for _, raw := range []string{"", "No separator", `a\nb`} {
		t.Run(raw, func(t *testing.T) {
			_, err := parser.Parse(raw)
			require.Error(t, err)

			var formatErr *entities.FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, raw, formatErr.Raw)
			assert.ErrorIs(t, err, entities.ErrMissingSeparator)
			assert.Contains(t, err.Error(), entities.SlideFormat)
		})
	}
}

func TestSpecParser_ParseAll(t *testing.T) {
	parser := NewSpecParser()

	t.Run("keeps input order", func(t *testing.T) {
		specs, err := parser.ParseAll([]string{"Intro|Welcome", `Topics|One\nTwo`})
		require.NoError(t, err)
		require.Len(t, specs, 2)

		assert.Equal(t, "Intro", specs[0].Title)
		assert.Equal(t, []string{"Welcome"}, specs[0].Lines)
		assert.Equal(t, "Topics", specs[1].Title)
		assert.Equal(t, []string{"One", "Two"}, specs[1].Lines)
	})

	t.Run("reports position of bad value", func(t *testing.T) {
		_, err := parser.ParseAll([]string{"Ok|fine", "broken"})
		require.Error(t, err)

		var formatErr *entities.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 2, formatErr.Position)
		assert.Contains(t, err.Error(), `slide 2 "broken"`)
	})

	t.Run("nil input", func(t *testing.T) {
		specs, err := parser.ParseAll(nil)
		require.NoError(t, err)
		assert.Empty(t, specs)
	})
}
