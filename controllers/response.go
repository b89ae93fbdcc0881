package controllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {success: bool, data?: ..., error?: string}.

func sendSuccess(ctx *gin.Context, data any) {
	if data == nil {
		ctx.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func sendError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "error": message})
}

// joinFieldErrors flattens a field->message map into one deterministic
// error string, sorted by field name.
func joinFieldErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+errs[field])
	}
	return strings.Join(parts, "; ")
}
