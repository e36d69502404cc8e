package connectionhub

import (
	"testing"

	"github.com/stretchr/testify/require"
	wsmodels "leave-letter-backend/models/ws"
)

func TestHub(t *testing.T) {
	t.Run(`message without client is dropped`, func(t *testing.T) {
		hub := NewInstance()
		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToSessionID: "s1", Code: wsmodels.EventProgress})
			hub.SendClose("s1")
			hub.DeleteClient("s1", nil)
		})
	})

	t.Run(`client without connection`, func(t *testing.T) {
		hub := NewInstance()
		hub.AddClient("s1", nil)
		require.Len(t, hub.(*impl).clients, 1)
		require.NotPanics(t, func() {
			for p := 0; p <= 100; p += 10 {
				hub.SendMessage(wsmodels.ServerMessage{ToSessionID: "s1", Code: wsmodels.EventProgress, Progress: p})
			}
		})
		hub.DeleteClient("s1", nil)
		require.Empty(t, hub.(*impl).clients)
	})
}
