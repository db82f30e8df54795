package ctypes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyTimeMarshalJSON(t *testing.T) {
	mt := MyTime(time.Date(2024, 6, 1, 12, 30, 0, 0, time.Local))
	data, err := json.Marshal(mt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01 12:30:00"`, string(data))
}

func TestMyTimeUnmarshalJSON(t *testing.T) {
	var mt MyTime
	err := json.Unmarshal([]byte(`"2024-06-01 12:30:00"`), &mt)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 12:30:00", mt.String())
}
