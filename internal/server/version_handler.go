package server

import (
	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/version"
)

// handleVersion reports the build version.
func handleVersion(c *gin.Context) {
	success(c, gin.H{
		"version":    version.Version,
		"commit":     version.Commit,
		"build_date": version.BuildDate,
	})
}
