package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY id`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, apperror.Internal(err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

// CountByIDs returns how many of the given IDs exist. Callers compare it
// against len(ids) to reject references to unknown skills.
func (r *skillRepo) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT id) FROM skills WHERE id = ANY($1)`,
		pq.Array(ids),
	).Scan(&count)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
