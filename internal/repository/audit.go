package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// insertAudit appends one audit-trail row describing a mutation. It must run
// on the same transaction as the domain write it describes: both commit or
// roll back together, so a committed domain row always has its audit entry
// and a failed one never does.
//
// user_id is NULL until an authentication layer exists to attribute actions.
// details is a small structured payload with enough context to reconstruct
// intent without re-reading the domain row; pgx encodes the map as JSONB.
func insertAudit(ctx context.Context, tx pgx.Tx, action, entity string, entityID int, details map[string]any) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO audit_log (user_id, action, entity, entity_id, details)
		 VALUES (NULL, $1, $2, $3, $4)`,
		action, entity, entityID, details,
	)
	return err
}
