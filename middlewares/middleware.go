package middlewares

import (
	"context"
	"net/http"
	"strings"

	"bitbucket.org/rutaandina/backend/config"
	"bitbucket.org/rutaandina/backend/helpers"
	"bitbucket.org/rutaandina/backend/models"
	"github.com/dgrijalva/jwt-go"
	jwtmiddleware "github.com/mfuentesg/go-jwtmiddleware"
	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"

	"github.com/urfave/negroni"
)

func jwtErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	r := &ResponseWriter{Writer: w}
	if err != nil && err.Error() == "Token is expired" {
		r.Error(http.StatusUnauthorized, "unauthorized", WithErrorScope("token"), WithErrorType(1))
		return
	}
	if err != nil {
		r.Error(http.StatusUnauthorized, "unauthorized", WithErrorScope("token"))
	}
}

func NewJWTMiddleware(secret []byte) *jwtmiddleware.Middleware {
	return jwtmiddleware.New(
		jwtmiddleware.WithErrorHandler(jwtErrorHandler),
		jwtmiddleware.WithSigningMethod(jwt.SigningMethodHS256),
		jwtmiddleware.WithSignKey(secret),
		jwtmiddleware.WithUserProperty("_jwt-token"),
	)
}

func LoggerRequest(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	requestLogger := log.WithFields(log.Fields{"request_id": r.Header.Get("X-Request-ID"), "query": r.URL.Query(), "host": r.Host, "url": r.URL.Path})
	requestLogger.Info("logger_request")
	config.SetLogger(requestLogger)
	next(rw, r)
}

// UserMiddleware decodes the bearer token when one is present and
// stores the derived InfoUser in the request context. Tokens are
// passed through, never required: the CRUD routes stay open and only
// the role-guarded handlers look at the context value.
func UserMiddleware() negroni.HandlerFunc {
	return negroni.HandlerFunc(func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		authorization := r.Header.Get("Authorization")
		if len(authorization) == 0 {
			authorization = r.URL.Query().Get("token")
			r.Header.Set("Authorization", authorization)
		}
		token := strings.Split(authorization, " ")
		if len(token) == 2 {
			tokenString := token[1]
			data, _ := helpers.ParserTokenUnverified(tokenString)
			tokenParse, ok := data["u"].(map[string]interface{})
			if ok {
				dataInfo := models.InfoUser{}
				mapstructure.Decode(map[string]interface{}{
					"ID":    tokenParse["i"],
					"Roles": tokenParse["r"],
					"Read":  tokenParse["read"],
				}, &dataInfo)

				isAdmin := helpers.Contains(dataInfo.Roles, 1)
				isOperator := helpers.Contains(dataInfo.Roles, 2)
				isGuide := helpers.Contains(dataInfo.Roles, 3)
				isClient := helpers.Contains(dataInfo.Roles, 4)
				isAPI := helpers.Contains(dataInfo.Roles, 5)

				if r.Method != "GET" && dataInfo.Read {
					a := &ResponseWriter{Writer: rw}
					a.Error(http.StatusUnauthorized, "unauthorized", WithErrorScope("token"))
					return
				}

				ctx := context.WithValue(r.Context(), string("user"), map[string]interface{}{
					"Email":      tokenParse["email"],
					"ID":         tokenParse["i"],
					"IsAdmin":    isAdmin,
					"IsOperator": isOperator,
					"IsGuide":    isGuide,
					"IsClient":   isClient,
					"IsAPI":      isAPI,
					"Read":       dataInfo.Read,
					"Roles":      tokenParse["r"],
				})
				next(rw, r.WithContext(ctx))
				return
			}
		}
		next(rw, r)
	})
}
