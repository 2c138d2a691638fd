package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLogKeepsNewest(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3
	for _, msg := range []string{"a", "b", "c", "d"} {
		ml.Add(msg)
	}

	require.Len(t, ml.Messages, 3)
	recent := ml.RecentMessages(10)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Text)
	assert.Equal(t, "b", recent[2].Text)

	ml.Clear()
	assert.Empty(t, ml.RecentMessages(2))
}

func TestMessageLogClassifies(t *testing.T) {
	ml := NewMessageLog()
	ml.Add("Generated a 10x10 cave")
	ml.Add("Meshed 10x10 grid")
	ml.Add("ERROR: failed to load preset")
	ml.Add("hello")
	ml.AddColored("forced", MessageTypeAlert)

	types := make([]MessageType, 0, len(ml.Messages))
	for _, m := range ml.Messages {
		types = append(types, m.Type)
	}
	assert.Equal(t, []MessageType{
		MessageTypeGeneration, MessageTypeMesh, MessageTypeAlert, MessageTypeNormal, MessageTypeAlert,
	}, types)
	assert.NotEqual(t, ml.Messages[2].GetColor(), ml.Messages[3].GetColor())
}

func TestGetMessageLogIsShared(t *testing.T) {
	assert.Same(t, GetMessageLog(), GetMessageLog())
}
