package store

import (
	"context"
	"fmt"

	"fitcourse/internal/database"
	"fitcourse/internal/model"

	"github.com/google/uuid"
)

func ListSkills(ctx context.Context, db database.DB) ([]model.Skill, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name FROM skills`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSkills: %w", err)
	}
	defer rows.Close()

	var skills []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("ListSkills: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSkills: %w", err)
	}
	return skills, nil
}

func GetSkillByName(ctx context.Context, db database.DB, name string) (*model.Skill, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name FROM skills WHERE name = $1`,
		name,
	)
	s := &model.Skill{}
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		return nil, fmt.Errorf("GetSkillByName: %w", mapError(err))
	}
	return s, nil
}

// CreateSkill 新增專長；名稱唯一鍵衝突回傳 ErrDuplicate
func CreateSkill(ctx context.Context, db database.DB, s *model.Skill) (*model.Skill, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1) RETURNING id`,
		s.Name,
	)
	if err := row.Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("CreateSkill: %w", mapError(err))
	}
	return s, nil
}

// DeleteSkill 刪除專長；影響零筆回傳 ErrNotFound
func DeleteSkill(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM skills WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteSkill: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteSkill: %w", ErrNotFound)
	}
	return nil
}
