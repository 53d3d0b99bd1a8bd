package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError maps postgres errors from either driver to an HTTP status and message.
func MapPGError(err error) (int, string) {
	code := ""
	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code = pgxErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	switch code {
	case "23505":
		return fiber.StatusConflict, "duplicate data (unique violation)"
	case "23503":
		return fiber.StatusBadRequest, "referenced record not found"
	case "23514":
		return fiber.StatusBadRequest, "check constraint violated"
	}
	return fiber.StatusInternalServerError, "database error"
}

func IsUniqueViolation(err error) bool {
	status, _ := MapPGError(err)
	return status == fiber.StatusConflict
}

func WritePGError(c *fiber.Ctx, err error) error {
	status, msg := MapPGError(err)
	return JsonError(c, status, msg)
}
