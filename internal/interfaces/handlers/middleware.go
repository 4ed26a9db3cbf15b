package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lindenb1/impress/internal/interfaces/dto"
	"github.com/lindenb1/impress/internal/locale"
	"github.com/lindenb1/impress/pkg/errors"
	"go.uber.org/zap"
)

const localeKey = "locale"

// respondWithError localizes message into the language negotiated by
// LocaleMiddleware.
func respondWithError(c *gin.Context, httpStatus, errorCode int, message string) {
	message = locale.Localize(c.GetString(localeKey), message)
	c.JSON(httpStatus, dto.APIResponse{
		Error: &dto.ErrorResponse{
			Code:   errorCode,
			Text:   message,
			Causes: []string{message},
		},
	})
}

func respondWithSuccess(c *gin.Context, response, data any) {
	c.JSON(http.StatusOK, dto.APIResponse{
		Response: response,
		Data:     data,
	})
}

func handleServiceError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *errors.BadRequestError:
		respondWithError(c, http.StatusBadRequest, 400, e.Message)
	case *errors.NotFoundError:
		respondWithError(c, http.StatusNotFound, 404, e.Message)
	case *errors.InternalError:
		respondWithError(c, http.StatusInternalServerError, 500, e.Message)
	default:
		respondWithError(c, http.StatusInternalServerError, 500, "internal server error")
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept-Language, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "OPTIONS, GET, HEAD")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func HeadToGetMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		if c.Request.Method == "HEAD" {
			c.Request.Method = "GET"
			c.Writer = &headResponseWriter{c.Writer}
		}
		c.Next()
	})
}

type headResponseWriter struct {
	gin.ResponseWriter
}

func (w *headResponseWriter) Write(data []byte) (int, error) {
	return len(data), nil
}

// LocaleMiddleware picks the response language from Accept-Language. Error
// texts are rendered in it.
func LocaleMiddleware(languages []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.Negotiate(c.GetHeader("Accept-Language"), languages)
		c.Set(localeKey, lang)
		if lang != "" {
			c.Header("Content-Language", lang)
		}
		c.Next()
	}
}

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("locale", c.GetString(localeKey)),
		)
	}
}
