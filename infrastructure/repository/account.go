package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/database/postgres"
)

type AccountRepository interface {
	ListAccountIDs(ctx context.Context) ([]int64, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// ListAccountIDs retorna os ids das contas já conhecidas pelo banco.
// Alimenta o agendador, que dispara uma sincronização por conta.
func (a *accountRepository) ListAccountIDs(ctx context.Context) ([]int64, error) {
	query, _, err := squirrel.
		Select("id").
		From("ad_accounts").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
