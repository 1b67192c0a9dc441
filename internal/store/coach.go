package store

import (
	"context"
	"fmt"

	"fitcourse/internal/database"
	"fitcourse/internal/model"

	"github.com/google/uuid"
)

// CoachListRow 教練列表的查詢投影：Coach.id 加上關聯 User.name
type CoachListRow struct {
	ID   uuid.UUID
	Name string
}

// PromoteUserToCoach 在單一交易內完成升級流程的兩筆寫入：
// 角色 USER→COACH 的條件式更新，以及 coaches 資料列的建立。
// 任一步失敗即整筆回滾，不會留下角色與教練資料不一致的狀態。
// 條件式更新影響零筆（併發下已被改走角色）回傳 ErrNotFound。
func PromoteUserToCoach(ctx context.Context, db database.DB, coach *model.Coach) (*model.Coach, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("PromoteUserToCoach: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE users SET role = $1, updated_at = now()
		 WHERE id = $2 AND role = $3`,
		model.RoleCoach,
		coach.UserID,
		model.RoleUser,
	)
	if err != nil {
		return nil, fmt.Errorf("PromoteUserToCoach: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("PromoteUserToCoach: %w", ErrNotFound)
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO coaches (user_id, experience_years, description, profile_image_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		coach.UserID,
		coach.ExperienceYears,
		coach.Description,
		coach.ProfileImageURL,
	)
	if err := row.Scan(&coach.ID, &coach.CreatedAt, &coach.UpdatedAt); err != nil {
		return nil, fmt.Errorf("PromoteUserToCoach: %w", mapError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("PromoteUserToCoach: %w", err)
	}
	return coach, nil
}

func GetCoachByID(ctx context.Context, db database.DB, coachID uuid.UUID) (*model.Coach, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, experience_years, description, profile_image_url, created_at, updated_at
		 FROM coaches WHERE id = $1`,
		coachID,
	)
	co := &model.Coach{}
	if err := row.Scan(
		&co.ID,
		&co.UserID,
		&co.ExperienceYears,
		&co.Description,
		&co.ProfileImageURL,
		&co.CreatedAt,
		&co.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetCoachByID: %w", mapError(err))
	}
	return co, nil
}

// ListCoaches 依建立順序分頁回傳教練列表，帶出關聯使用者名稱
func ListCoaches(ctx context.Context, db database.DB, per, page int) ([]CoachListRow, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, u.name
		 FROM coaches c
		 JOIN users u ON u.id = c.user_id
		 ORDER BY c.created_at
		 OFFSET $1 LIMIT $2`,
		(page-1)*per,
		per,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCoaches: %w", err)
	}
	defer rows.Close()

	var coaches []CoachListRow
	for rows.Next() {
		var r CoachListRow
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("ListCoaches: %w", err)
		}
		coaches = append(coaches, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCoaches: %w", err)
	}
	return coaches, nil
}
