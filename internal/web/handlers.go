// ABOUTME: HTTP handlers for the page, JSON search, and topic presets
// ABOUTME: Each request runs one controller cycle in its own session

package web

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/feed"
	"github.com/harper/headlines/internal/status"
)

var funcs = template.FuncMap{
	"statusClass": status.CSSClass,
}

type pageData struct {
	Query      string
	Nav        []*feed.NavItem
	Status     status.Message
	Cards      []*card.Card
	SeedTopic  string
	LastQuery  string
	ShowStatus bool
}

// StatusOutput is the status line in JSON responses.
type StatusOutput struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

// SearchOutput is the body of /api/search.
type SearchOutput struct {
	Query     string        `json:"query"`
	ActiveTab string        `json:"active_tab,omitempty"`
	Outcome   string        `json:"outcome"`
	Status    *StatusOutput `json:"status,omitempty"`
	Cards     []*card.Card  `json:"cards"`
}

// run picks the binding from the query string. With no parameters the
// page behaves like a fresh load and requests the seed topic.
func (s *Server) run(ctx context.Context, c *gin.Context, ctrl *feed.Controller) feed.Outcome {
	start := time.Now()
	var out feed.Outcome

	if q, ok := c.GetQuery("q"); ok {
		out = ctrl.Submit(ctx, q)
	} else if nav := c.Query("nav"); nav != "" {
		if item := ctrl.Nav().Match(nav); item != nil {
			out = ctrl.ActivateTab(ctx, item)
		} else {
			out = ctrl.Init(ctx)
		}
	} else if c.Query("home") != "" {
		out = ctrl.Home(ctx)
	} else {
		out = ctrl.Init(ctx)
	}

	if out.Phase != feed.Idle {
		s.metrics.searchDuration.Observe(time.Since(start).Seconds())
	}
	s.metrics.requests.WithLabelValues(out.Phase.String()).Inc()
	return out
}

func (s *Server) handleIndex(c *gin.Context) {
	ctrl, board := s.session(c.GetString("request_id"))
	s.run(c.Request.Context(), c, ctrl)

	msg := ctrl.Status().Message()
	data := pageData{
		Query:      c.Query("q"),
		Nav:        ctrl.Nav().Items(),
		Status:     msg,
		Cards:      board.Cards(),
		SeedTopic:  ctrl.SeedTopic(),
		LastQuery:  ctrl.State().LastQuery,
		ShowStatus: msg.Visible,
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.page.ExecuteTemplate(c.Writer, "index.html", data); err != nil {
		s.opts.Logger.Error("render page", "err", err)
	}
}

func (s *Server) handleSearch(c *gin.Context) {
	ctrl, board := s.session(c.GetString("request_id"))
	if strings.TrimSpace(c.Query("q")) == "" && c.Query("nav") == "" && c.Query("home") == "" {
		// The API has no implicit seed load; a missing q is blank input
		ctrl.Submit(c.Request.Context(), "")
		s.metrics.requests.WithLabelValues(feed.Idle.String()).Inc()
		c.JSON(http.StatusBadRequest, s.searchOutput(ctrl, board, feed.Outcome{Phase: feed.Idle}))
		return
	}

	out := s.run(c.Request.Context(), c, ctrl)
	code := http.StatusOK
	if out.Phase == feed.Failed {
		code = http.StatusBadGateway
	}
	c.JSON(code, s.searchOutput(ctrl, board, out))
}

func (s *Server) handleTopics(c *gin.Context) {
	ctrl, _ := s.session(c.GetString("request_id"))
	seed := ctrl.Nav().Match(ctrl.SeedTopic())

	topics := make([]gin.H, 0, len(ctrl.Nav().Items()))
	for _, it := range ctrl.Nav().Items() {
		topics = append(topics, gin.H{"label": it.Label, "query": it.Query, "seed": it == seed})
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics, "count": len(topics)})
}

func (s *Server) searchOutput(ctrl *feed.Controller, board *feed.Board, out feed.Outcome) SearchOutput {
	output := SearchOutput{
		Query:   ctrl.State().LastQuery,
		Outcome: out.Phase.String(),
		Cards:   board.Cards(),
	}
	if msg := ctrl.Status().Message(); msg.Visible {
		output.Status = &StatusOutput{Text: msg.Text, Severity: msg.Severity.String()}
	}
	if active := ctrl.State().ActiveNav; active != nil {
		output.ActiveTab = active.Label
	}
	return output
}
