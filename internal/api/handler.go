package api

import (
	"errors"
	"net/http"

	"github.com/gagquiz/quizboard/internal/config"
	"github.com/gagquiz/quizboard/internal/pubsub"
	"github.com/gagquiz/quizboard/internal/quiz"
	"github.com/gagquiz/quizboard/internal/util"
	"github.com/gin-gonic/gin"
)

// TopicLeaderboard is the broker topic carrying leaderboard snapshots for the
// admin websocket.
const TopicLeaderboard = "leaderboard"

// Handler holds all dependencies for the API handlers.
type Handler struct {
	cfg     *config.Config
	scoring *quiz.Scoring
	ranking *quiz.Ranking
	broker  *pubsub.Broker
}

// NewHandler creates a new handler with its dependencies.
func NewHandler(
	cfg *config.Config,
	scoring *quiz.Scoring,
	ranking *quiz.Ranking,
	broker *pubsub.Broker,
) *Handler {
	return &Handler{
		cfg:     cfg,
		scoring: scoring,
		ranking: ranking,
		broker:  broker,
	}
}

// respondError maps engine error kinds to HTTP status codes. Status selection
// happens only here, at the transport boundary.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var qerr *quiz.Error
	if errors.As(err, &qerr) {
		switch qerr.Kind {
		case quiz.KindValidation:
			status = http.StatusBadRequest
		case quiz.KindUnauthorized:
			status = http.StatusUnauthorized
		case quiz.KindNotFound:
			status = http.StatusNotFound
		}
	}
	util.Error(c, status, err)
}
