package api

import (
	"encoding/json"
	"net/http"

	"github.com/gagquiz/quizboard/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) startQuiz(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}

	returning, err := h.scoring.RegisterStart(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	if !returning {
		zap.S().Infof("new participant started the quiz: %s", req.Email)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "returning": returning})
}

func (h *Handler) submitResult(c *gin.Context) {
	var req struct {
		Email   string `json:"email" binding:"required"`
		Name    string `json:"name"`
		Score   int    `json:"score"`
		Correct int    `json:"correct"`
		Wrong   int    `json:"wrong"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}

	if err := h.scoring.SubmitResult(c.Request.Context(), req.Email, req.Name, req.Score, req.Correct, req.Wrong); err != nil {
		respondError(c, err)
		return
	}
	h.publishLeaderboard(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) getMyRank(c *gin.Context) {
	email := c.Query("email")

	rank, total, err := h.ranking.Rank(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rank": rank, "total": total})
}

func (h *Handler) checkUser(c *gin.Context) {
	email := c.Query("email")

	exists, alreadyDone, err := h.scoring.CheckUser(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists, "already_done": alreadyDone})
}

func (h *Handler) submitExtra(c *gin.Context) {
	var req struct {
		Email      string `json:"email" binding:"required"`
		ExtraScore int    `json:"extra_score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}

	alreadyDone, err := h.scoring.SubmitExtra(c.Request.Context(), req.Email, req.ExtraScore)
	if err != nil {
		respondError(c, err)
		return
	}
	if alreadyDone {
		c.JSON(http.StatusOK, gin.H{"ok": true, "msg": "Zaten tamamlandı"})
		return
	}
	h.publishLeaderboard(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// publishLeaderboard pushes a fresh snapshot to the admin websocket topic.
// Best effort: a broken snapshot must not fail the submission that caused it.
func (h *Handler) publishLeaderboard(c *gin.Context) {
	entries, err := h.ranking.Leaderboard(c.Request.Context())
	if err != nil {
		zap.S().Errorf("failed to build leaderboard snapshot: %v", err)
		return
	}
	payload, err := json.Marshal(gin.H{"data": entries, "total": len(entries)})
	if err != nil {
		zap.S().Errorf("failed to marshal leaderboard snapshot: %v", err)
		return
	}
	h.broker.Publish(TopicLeaderboard, payload)
}
