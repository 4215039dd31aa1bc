package repository

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"hackathon-backend/pkg/apierror"
)

// raiseException is the SQLSTATE produced by RAISE EXCEPTION inside the
// sp_* routines. Those messages are business-rule violations and surface to
// the client as 400s; anything else stays an internal error.
const raiseException = "P0001"

func asRuleViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == raiseException {
		return apierror.New("BAD_REQUEST", pgErr.Message, "", http.StatusBadRequest)
	}
	return err
}
