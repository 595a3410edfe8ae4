package api

import (
	"net/http"

	"github.com/gagquiz/quizboard/internal/auth"
	"github.com/gagquiz/quizboard/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) adminLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}

	if !auth.VerifySecret(req.Password, h.cfg.Admin.Password, h.cfg.Admin.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, "wrong password")
		return
	}

	// The verified secret doubles as the bearer token for subsequent calls.
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": req.Password})
}

func (h *Handler) adminLeaderboard(c *gin.Context) {
	entries, err := h.ranking.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": entries, "total": len(entries)})
}

func (h *Handler) adminStats(c *gin.Context) {
	stats, err := h.ranking.AggregateStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":                 true,
		"total_participants": stats.TotalParticipants,
		"total_completed":    stats.TotalCompleted,
		"avg_score":          stats.AvgScore,
		"avg_correct":        stats.AvgCorrect,
		"max_score":          stats.MaxScore,
	})
}

func (h *Handler) adminDeleteResult(c *gin.Context) {
	email := c.Param("email")

	if err := h.ranking.Delete(c.Request.Context(), email); err != nil {
		respondError(c, err)
		return
	}
	zap.S().Infof("admin deleted results for %s", email)
	h.publishLeaderboard(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
