package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const loggerKey = "logger"

// Respond logs err under "<label> error" and writes {"error": msg} with the
// status derived from the error kind.
func Respond(c *gin.Context, label string, err error) {
	Write(c, StatusOf(err), label, err)
}

// Write is Respond with an explicit status.
func Write(c *gin.Context, status int, label string, err error) {
	msg := messageOf(err)
	if msg == "" {
		msg = label + " failed"
	}

	entry := Logger(c).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error(label + " error")
	} else {
		entry.WithField("reason", msg).Warn(label + " error")
	}

	c.JSON(status, gin.H{"error": msg})
}

func messageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Message != "" {
			return e.Message
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return ""
	}
	return err.Error()
}

// FromBind converts a ShouldBindJSON failure into a validation error.
// Missing or empty required fields yield missingMsg.
func FromBind(err error, missingMsg string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return Validation(missingMsg)
	}
	return Validation("Invalid request body")
}

// Logger returns the request-scoped entry installed by the request logger,
// falling back to the standard logger.
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// SetLogger installs entry as the request-scoped logger.
func SetLogger(c *gin.Context, entry *logrus.Entry) {
	c.Set(loggerKey, entry)
}
