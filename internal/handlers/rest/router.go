// Package rest exposes the game service as JSON over HTTP using gin
package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/internal/errors"
	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
)

// Config holds dependencies for the REST router
type Config struct {
	Game   gamev1.GameServiceServer
	Logger *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil || c.Game == nil {
		return errors.InvalidArgument("game service is required")
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

type router struct {
	game   gamev1.GameServiceServer
	logger *zap.Logger
}

// NewRouter builds the gin engine serving /v1
func NewRouter(cfg *Config) (*gin.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt := &router{game: cfg.Game, logger: cfg.Logger}

	r := gin.New()
	r.Use(gin.Recovery(), rt.logRequests)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/player", rt.getPlayer)
		v1.POST("/player/skills", rt.spendSkillPoint)
		v1.POST("/player/advanced-skills", rt.unlockAdvancedSkill)
		v1.POST("/player/equip", rt.equipWeapon)
		v1.POST("/player/rest", rt.rest)
		v1.DELETE("/player/save", rt.resetSave)

		v1.POST("/encounters", rt.startEncounter)
		v1.GET("/encounters/:id", rt.getEncounter)
		v1.POST("/encounters/:id/attack", rt.attack)
		v1.POST("/encounters/:id/heal", rt.heal)
		v1.POST("/encounters/:id/flee", rt.flee)

		v1.POST("/dungeon/runs", rt.startDungeon)
		v1.GET("/dungeon/runs/:id", rt.getDungeonRun)
		v1.POST("/dungeon/runs/:id/submit", rt.submitStage)

		v1.POST("/classify", rt.classify)
	}

	return r, nil
}

func (rt *router) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()

	rt.logger.Debug("http request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
	)
}

// respond writes resp, or the error mapped to its HTTP status. Errors from the game
// service are gRPC statuses and are converted back first.
func respond[T any](c *gin.Context, resp *T, err error) {
	if err != nil {
		converted := errors.FromGRPCError(err)
		code := errors.GetCode(converted)
		if code.Retryable() {
			c.Header("Retry-After", "1")
		}
		c.JSON(code.HTTPStatus(), gin.H{
			"code":    code.String(),
			"message": errors.GetMessage(converted),
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bind decodes an optional JSON body into req
func bind(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errors.CodeInvalidArgument.String(),
			"message": err.Error(),
		})
		return false
	}
	return true
}

func (rt *router) getPlayer(c *gin.Context) {
	resp, err := rt.game.GetPlayer(c.Request.Context(), &gamev1.GetPlayerRequest{})
	respond(c, resp, err)
}

func (rt *router) spendSkillPoint(c *gin.Context) {
	req := &gamev1.SpendSkillPointRequest{}
	if !bind(c, req) {
		return
	}
	resp, err := rt.game.SpendSkillPoint(c.Request.Context(), req)
	respond(c, resp, err)
}

func (rt *router) unlockAdvancedSkill(c *gin.Context) {
	req := &gamev1.UnlockAdvancedSkillRequest{}
	if !bind(c, req) {
		return
	}
	resp, err := rt.game.UnlockAdvancedSkill(c.Request.Context(), req)
	respond(c, resp, err)
}

func (rt *router) equipWeapon(c *gin.Context) {
	req := &gamev1.EquipWeaponRequest{}
	if !bind(c, req) {
		return
	}
	resp, err := rt.game.EquipWeapon(c.Request.Context(), req)
	respond(c, resp, err)
}

func (rt *router) rest(c *gin.Context) {
	req := &gamev1.RestRequest{}
	if !bind(c, req) {
		return
	}
	resp, err := rt.game.Rest(c.Request.Context(), req)
	respond(c, resp, err)
}

func (rt *router) resetSave(c *gin.Context) {
	resp, err := rt.game.ResetSave(c.Request.Context(), &gamev1.ResetSaveRequest{})
	respond(c, resp, err)
}

func (rt *router) startEncounter(c *gin.Context) {
	req := &gamev1.StartEncounterRequest{}
	if !bind(c, req) {
		return
	}
	resp, err := rt.game.StartEncounter(c.Request.Context(), req)
	respond(c, resp, err)
}

func (rt *router) getEncounter(c *gin.Context) {
	resp, err := rt.game.GetEncounter(c.Request.Context(), &gamev1.EncounterRequest{
		EncounterID: c.Param("id"),
	})
	respond(c, resp, err)
}

func (rt *router) attack(c *gin.Context) {
	req := &gamev1.AttackRequest{}
	if !bind(c, req) {
		return
	}
	req.EncounterID = c.Param("id")
	resp, err := rt.game.Attack(c.Request.Context(), req)
	respond(c, resp, err)
}

func (rt *router) heal(c *gin.Context) {
	resp, err := rt.game.Heal(c.Request.Context(), &gamev1.EncounterRequest{EncounterID: c.Param("id")})
	respond(c, resp, err)
}

func (rt *router) flee(c *gin.Context) {
	resp, err := rt.game.Flee(c.Request.Context(), &gamev1.EncounterRequest{EncounterID: c.Param("id")})
	respond(c, resp, err)
}

func (rt *router) startDungeon(c *gin.Context) {
	resp, err := rt.game.StartDungeon(c.Request.Context(), &gamev1.StartDungeonRequest{})
	respond(c, resp, err)
}

func (rt *router) getDungeonRun(c *gin.Context) {
	resp, err := rt.game.GetDungeonRun(c.Request.Context(), &gamev1.DungeonRunRequest{RunID: c.Param("id")})
	respond(c, resp, err)
}

func (rt *router) submitStage(c *gin.Context) {
	req := &gamev1.SubmitStageRequest{}
	if !bind(c, req) {
		return
	}
	req.RunID = c.Param("id")
	resp, err := rt.game.SubmitStage(c.Request.Context(), req)
	respond(c, resp, err)
}

func (rt *router) classify(c *gin.Context) {
	req := &gamev1.ClassifyRequest{}
	if !bind(c, req) {
		return
	}
	resp, err := rt.game.Classify(c.Request.Context(), req)
	respond(c, resp, err)
}
