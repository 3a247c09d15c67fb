package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "command and task_id",
			setupCtx: func() context.Context {
				ctx := WithCommand(context.Background(), "task toggle")
				return WithTaskID(ctx, "t-1")
			},
			wantKeys: []string{"command", "task_id"},
		},
		{
			name: "only command",
			setupCtx: func() context.Context {
				return WithCommand(context.Background(), "task ls")
			},
			wantKeys:  []string{"command"},
			wantEmpty: []string{"task_id"},
		},
		{
			name:      "background context",
			setupCtx:  context.Background,
			wantEmpty: []string{"command", "task_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})

			logger.Info().Ctx(tt.setupCtx()).Msg("hello")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for _, key := range tt.wantKeys {
				assert.Contains(t, entry, key)
			}
			for _, key := range tt.wantEmpty {
				assert.NotContains(t, entry, key)
			}
		})
	}
}
