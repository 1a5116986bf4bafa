package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	res "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

// ParseID reads a positive integer path parameter. On failure it writes a
// 400 and returns false.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.InvalidParameter),
			res.WithErrorMessage("invalid "+name),
		))
		return 0, false
	}
	return uint(id), true
}
