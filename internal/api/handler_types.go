package api

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/prefs"
	"github.com/terraincognita07/nutritrack/internal/provider/fruityvice"
	"github.com/terraincognita07/nutritrack/internal/services"
)

const (
	authCookieName  = "nutritrack_token"
	contextUserKey  = "currentUser"
	defaultTokenTTL = 7 * 24 * time.Hour
)

// FruitLookup is the thin contract the fruit handler needs from the fruit
// client.
type FruitLookup interface {
	Lookup(ctx context.Context, name string) (fruityvice.Fruit, error)
}

type Handler struct {
	repositories  *db.Repositories
	preferences   *prefs.Store
	auth          *services.AuthService
	questionnaire *services.QuestionnaireService
	insights      *services.InsightsService
	chat          *services.ChatService
	setup         *services.SetupService
	fruit         FruitLookup

	secretKey    []byte
	cookieSecure bool
	loginLimiter *attemptLimiter
}

type authClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// NewHandler wires the HTTP surface to the service layer. The fruit lookup
// and chat generator may be nil; their routes then answer 503.
func NewHandler(
	repositories *db.Repositories,
	preferences *prefs.Store,
	auth *services.AuthService,
	questionnaire *services.QuestionnaireService,
	insights *services.InsightsService,
	chat *services.ChatService,
	fruit FruitLookup,
	secretKey string,
	cookieSecure bool,
) *Handler {
	return &Handler{
		repositories:  repositories,
		preferences:   preferences,
		auth:          auth,
		questionnaire: questionnaire,
		insights:      insights,
		chat:          chat,
		setup:         services.NewSetupService(repositories.Users),
		fruit:         fruit,
		secretKey:     []byte(secretKey),
		cookieSecure:  cookieSecure,
		loginLimiter:  newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
	}
}
