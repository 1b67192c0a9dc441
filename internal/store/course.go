package store

import (
	"context"
	"fmt"

	"fitcourse/internal/database"
	"fitcourse/internal/model"

	"github.com/google/uuid"
)

func CreateCourse(ctx context.Context, db database.DB, course *model.Course) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO courses (user_id, skill_id, name, description, start_at, end_at, max_participants, meeting_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		course.UserID,
		course.SkillID,
		course.Name,
		course.Description,
		course.StartAt,
		course.EndAt,
		course.MaxParticipants,
		course.MeetingURL,
	)
	if err := row.Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateCourse: %w", mapError(err))
	}
	return course, nil
}

func GetCourseByID(ctx context.Context, db database.DB, courseID uuid.UUID) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, skill_id, name, description, start_at, end_at, max_participants, meeting_url, created_at, updated_at
		 FROM courses WHERE id = $1`,
		courseID,
	)
	co := &model.Course{}
	if err := row.Scan(
		&co.ID,
		&co.UserID,
		&co.SkillID,
		&co.Name,
		&co.Description,
		&co.StartAt,
		&co.EndAt,
		&co.MaxParticipants,
		&co.MeetingURL,
		&co.CreatedAt,
		&co.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetCourseByID: %w", mapError(err))
	}
	return co, nil
}

// UpdateCourse 全欄位更新指定課程；影響零筆回傳 ErrNotFound
func UpdateCourse(ctx context.Context, db database.DB, course *model.Course) error {
	tag, err := db.Exec(ctx,
		`UPDATE courses
		 SET skill_id = $1, name = $2, description = $3, start_at = $4, end_at = $5,
		     max_participants = $6, meeting_url = $7, updated_at = now()
		 WHERE id = $8`,
		course.SkillID,
		course.Name,
		course.Description,
		course.StartAt,
		course.EndAt,
		course.MaxParticipants,
		course.MeetingURL,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateCourse: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateCourse: %w", ErrNotFound)
	}
	return nil
}
