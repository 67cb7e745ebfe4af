package http

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pagingParams reads page and size query parameters. Absent values come
// back as zero and the query constructors apply their defaults.
func pagingParams(ctx echo.Context) (page, size int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}

	if raw := ctx.QueryParam("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}

	return page, size, nil
}
