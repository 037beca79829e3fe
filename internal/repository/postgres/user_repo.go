package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const userColumns = `id, name, to_char(birth_date, 'YYYY-MM-DD'), email, phone, password_hash,
	cep, address, city, state, role, selected_for_interview,
	to_char(interview_date, 'YYYY-MM-DD'), interview_time, created_at, updated_at`

// Same column list qualified for queries that alias users as "u".
const userColumnsAliased = `u.id, u.name, to_char(u.birth_date, 'YYYY-MM-DD'), u.email, u.phone, u.password_hash,
	u.cep, u.address, u.city, u.state, u.role, u.selected_for_interview,
	to_char(u.interview_date, 'YYYY-MM-DD'), u.interview_time, u.created_at, u.updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.BirthDate, &user.Email, &user.Phone, &user.PasswordHash,
		&user.CEP, &user.Address, &user.City, &user.State, &user.Role, &user.SelectedForInterview,
		&user.InterviewDate, &user.InterviewTime, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return apperror.Conflict("User with this email already exists")
		case "users_phone_key":
			return apperror.Conflict("User with this phone already exists")
		}
		return apperror.Conflict("User already exists")
	}
	return nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User, skillIDs []int64, educations []domain.Education) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (name, birth_date, email, phone, password_hash, cep, address, city, state, role)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		user.Name, user.BirthDate, user.Email, user.Phone, user.PasswordHash,
		user.CEP, user.Address, user.City, user.State, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if conflict := mapUniqueViolation(err); conflict != nil {
			return conflict
		}
		return apperror.Internal(err)
	}

	if err := insertSkills(ctx, tx, user.ID, skillIDs); err != nil {
		return apperror.Internal(err)
	}
	if err := insertEducations(ctx, tx, user.ID, educations); err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (r *userRepo) GetWithRelations(ctx context.Context, id int64) (*domain.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	if err := r.attachSkills(ctx, []*domain.User{user}); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := r.attachEducations(ctx, []*domain.User{user}); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, user *domain.User, skillIDs []int64, educations []domain.Education, replaceSkills, replaceEducations bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE users
	          SET name = $2, birth_date = $3, email = $4, phone = $5, cep = $6,
	              address = $7, city = $8, state = $9, updated_at = now()
	          WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		user.ID, user.Name, user.BirthDate, user.Email, user.Phone,
		user.CEP, user.Address, user.City, user.State,
	)
	if err != nil {
		if conflict := mapUniqueViolation(err); conflict != nil {
			return conflict
		}
		return apperror.Internal(err)
	}

	// Pivot rows are replaced wholesale: the request's set becomes the
	// user's set.
	if replaceSkills {
		if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, user.ID); err != nil {
			return apperror.Internal(err)
		}
		if err := insertSkills(ctx, tx, user.ID, skillIDs); err != nil {
			return apperror.Internal(err)
		}
	}
	if replaceEducations {
		if _, err := tx.Exec(ctx, `DELETE FROM educations WHERE user_id = $1`, user.ID); err != nil {
			return apperror.Internal(err)
		}
		if err := insertEducations(ctx, tx, user.ID, educations); err != nil {
			return apperror.Internal(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// ListCandidates relies on ILIKE for the case-insensitive substring
// semantics of both the name and skill filters.
func (r *userRepo) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.User, int64, error) {
	where := []string{`u.role = 'candidate'`}
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf(`u.name ILIKE $%d`, len(args)))
	}
	if filter.Skill != "" {
		args = append(args, "%"+filter.Skill+"%")
		where = append(where, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM user_skills us JOIN skills s ON s.id = us.skill_id
			         WHERE us.user_id = u.id AND s.name ILIKE $%d)`, len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u WHERE ` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE %s ORDER BY u.id LIMIT $%d OFFSET $%d`,
		userColumnsAliased, whereClause, len(args)-1, len(args))

	users, err := r.queryUsers(ctx, query, args...)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return users, total, nil
}

func (r *userRepo) ListScheduled(ctx context.Context, filter domain.InterviewFilter) ([]domain.User, int64, error) {
	where := []string{`u.role = 'candidate'`, `u.selected_for_interview = TRUE`,
		`u.interview_date IS NOT NULL`, `u.interview_time IS NOT NULL`}
	args := []interface{}{}

	if filter.Date != "" {
		args = append(args, filter.Date)
		where = append(where, fmt.Sprintf(`u.interview_date = $%d`, len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u WHERE ` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE %s
	                      ORDER BY u.interview_date, u.interview_time LIMIT $%d OFFSET $%d`,
		userColumnsAliased, whereClause, len(args)-1, len(args))

	users, err := r.queryUsers(ctx, query, args...)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return users, total, nil
}

func (r *userRepo) UpdateInterview(ctx context.Context, id int64, selected bool, date, timeOfDay *string) error {
	query := `UPDATE users
	          SET selected_for_interview = $2, interview_date = $3, interview_time = $4, updated_at = now()
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, selected, date, timeOfDay)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

func (r *userRepo) queryUsers(ctx context.Context, query string, args ...interface{}) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.BirthDate, &user.Email, &user.Phone, &user.PasswordHash,
			&user.CEP, &user.Address, &user.City, &user.State, &user.Role, &user.SelectedForInterview,
			&user.InterviewDate, &user.InterviewTime, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ptrs := make([]*domain.User, len(users))
	for i := range users {
		ptrs[i] = &users[i]
	}
	if err := r.attachSkills(ctx, ptrs); err != nil {
		return nil, err
	}
	if err := r.attachEducations(ctx, ptrs); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) attachSkills(ctx context.Context, users []*domain.User) error {
	if len(users) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.User, len(users))
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		u.Skills = []domain.Skill{}
		byID[u.ID] = u
		ids = append(ids, u.ID)
	}

	query := `SELECT us.user_id, s.id, s.name
	          FROM user_skills us
	          JOIN skills s ON s.id = us.skill_id
	          WHERE us.user_id = ANY($1)
	          ORDER BY s.id`
	rows, err := r.db.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var skill domain.Skill
		if err := rows.Scan(&userID, &skill.ID, &skill.Name); err != nil {
			return err
		}
		if u, ok := byID[userID]; ok {
			u.Skills = append(u.Skills, skill)
		}
	}
	return rows.Err()
}

func (r *userRepo) attachEducations(ctx context.Context, users []*domain.User) error {
	if len(users) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.User, len(users))
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		u.Educations = []domain.Education{}
		byID[u.ID] = u
		ids = append(ids, u.ID)
	}

	query := `SELECT id, user_id, course_name, institution, to_char(concluded_at, 'YYYY-MM-DD')
	          FROM educations
	          WHERE user_id = ANY($1)
	          ORDER BY id`
	rows, err := r.db.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var edu domain.Education
		if err := rows.Scan(&edu.ID, &edu.UserID, &edu.CourseName, &edu.Institution, &edu.ConcludedAt); err != nil {
			return err
		}
		if u, ok := byID[edu.UserID]; ok {
			u.Educations = append(u.Educations, edu)
		}
	}
	return rows.Err()
}

func insertSkills(ctx context.Context, tx pgx.Tx, userID int64, skillIDs []int64) error {
	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, skillID)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertEducations(ctx context.Context, tx pgx.Tx, userID int64, educations []domain.Education) error {
	for _, edu := range educations {
		_, err := tx.Exec(ctx,
			`INSERT INTO educations (user_id, course_name, institution, concluded_at) VALUES ($1, $2, $3, $4)`,
			userID, edu.CourseName, edu.Institution, edu.ConcludedAt)
		if err != nil {
			return err
		}
	}
	return nil
}
