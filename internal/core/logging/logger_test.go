package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	tests := []struct {
		name      string
		component string
		ctx       context.Context
		want      map[string]any
	}{
		{
			name:      "plain",
			component: "tasklet",
			ctx:       context.Background(),
			want:      map[string]any{"cmp": "tasklet", "message": "opened"},
		},
		{
			name:      "with command context",
			component: "tui",
			ctx:       WithTaskID(WithCommand(context.Background(), "task"), "a1b2c3d4"),
			want: map[string]any{
				"cmp":     "tui",
				"message": "opened",
				"command": "task",
				"task_id": "a1b2c3d4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.Logger = zerolog.New(&buf).Hook(ContextHook{})

			logger := Component(tt.component)
			logger.Info().Ctx(tt.ctx).Msg("opened")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			for k, v := range tt.want {
				assert.Equal(t, v, entry[k], k)
			}
		})
	}
}

func TestComponent_ReadsGlobalAtCallTime(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var before, after bytes.Buffer
	log.Logger = zerolog.New(&before)
	early := Component("early")

	log.Logger = zerolog.New(&after)
	late := Component("late")

	early.Info().Msg("one")
	late.Info().Msg("two")

	assert.Contains(t, before.String(), `"cmp":"early"`)
	assert.NotContains(t, before.String(), "late")
	assert.Contains(t, after.String(), `"cmp":"late"`)
}
