package http

import (
	"io"
	"net/http"

	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/pkg/x/chflow"

	"github.com/gin-gonic/gin"
)

const windowEvent = "window"

// WindowResponse is a feed window as served to clients.
type WindowResponse struct {
	Items      []feed.DecodedTx   `json:"items"`
	TotalCount int64              `json:"total_count"`
	State      feed.State         `json:"state"`
	Loading    bool               `json:"loading"`
	Notice     *feed.Notification `json:"notice"`
}

func (s *Server) windowResponse(w feed.Window) WindowResponse {
	res := WindowResponse{
		Items:      w.Items,
		TotalCount: w.TotalCount,
		State:      w.State,
		Loading:    w.Loading(),
	}
	if res.Items == nil {
		res.Items = []feed.DecodedTx{}
	}
	if n, ok := s.feed.Notice(); ok {
		res.Notice = &n
	}

	return res
}

func (s *Server) getWindow(c *gin.Context) {
	c.JSON(http.StatusOK, s.windowResponse(s.feed.Snapshot()))
}

// streamWindow sends the current window, then every update, as server-sent
// events. A slow client only ever sees the latest pending window.
func (s *Server) streamWindow(c *gin.Context) {
	updates := make(chan feed.Window, 1)
	unregister := s.feed.OnUpdate(func(w feed.Window) {
		chflow.Offer(updates, w)
	})
	defer unregister()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent(windowEvent, s.windowResponse(s.feed.Snapshot()))
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case w := <-updates:
			c.SSEvent(windowEvent, s.windowResponse(w))
			return true
		}
	})
}

func (s *Server) dismissNotice(c *gin.Context) {
	s.feed.DismissNotice()
	c.Status(http.StatusNoContent)
}
