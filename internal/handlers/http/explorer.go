package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gabapcia/chainscope/internal/explorer"

	"github.com/gin-gonic/gin"
)

func (s *Server) getTransaction(c *gin.Context) {
	detail, err := s.views.Transaction(c.Request.Context(), c.Param("hash"))
	if err != nil {
		_ = c.Error(err).SetMeta("Failed to fetch transaction")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (s *Server) getAccount(c *gin.Context) {
	detail, err := s.views.Account(c.Request.Context(), c.Param("address"))
	if err != nil {
		_ = c.Error(err).SetMeta("Failed to fetch account")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (s *Server) getBlock(c *gin.Context) {
	height, err := strconv.ParseInt(c.Param("height"), 10, 64)
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: %q", explorer.ErrInvalidHeight, c.Param("height"))).SetMeta("Failed to fetch block")
		return
	}

	detail, err := s.views.Block(c.Request.Context(), height)
	if err != nil {
		_ = c.Error(err).SetMeta("Failed to fetch block")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (s *Server) getLatestBlocks(c *gin.Context) {
	latest, err := s.views.LatestBlocks(c.Request.Context())
	if err != nil {
		_ = c.Error(err).SetMeta("Failed to fetch blocks")
		return
	}

	c.JSON(http.StatusOK, latest)
}

func (s *Server) getProposals(c *gin.Context) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		_ = c.Error(err).SetMeta("Failed to fetch proposals")
		return
	}
	perPage, err := queryInt(c, "per_page", s.defaultPerPage)
	if err != nil {
		_ = c.Error(err).SetMeta("Failed to fetch proposals")
		return
	}

	res, err := s.views.Proposals(c.Request.Context(), page, perPage)
	if err != nil {
		_ = c.Error(err).SetMeta("Failed to fetch proposals")
		return
	}

	c.JSON(http.StatusOK, res)
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", explorer.ErrInvalidPage, key, raw)
	}
	return v, nil
}
