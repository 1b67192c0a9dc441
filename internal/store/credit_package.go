package store

import (
	"context"
	"fmt"

	"fitcourse/internal/database"
	"fitcourse/internal/model"

	"github.com/google/uuid"
)

func ListCreditPackages(ctx context.Context, db database.DB) ([]model.CreditPackage, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, credit_amount, price
		 FROM credit_packages`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCreditPackages: %w", err)
	}
	defer rows.Close()

	var packages []model.CreditPackage
	for rows.Next() {
		var p model.CreditPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.CreditAmount, &p.Price); err != nil {
			return nil, fmt.Errorf("ListCreditPackages: %w", err)
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCreditPackages: %w", err)
	}
	return packages, nil
}

func GetCreditPackageByName(ctx context.Context, db database.DB, name string) (*model.CreditPackage, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, credit_amount, price
		 FROM credit_packages WHERE name = $1`,
		name,
	)
	p := &model.CreditPackage{}
	if err := row.Scan(&p.ID, &p.Name, &p.CreditAmount, &p.Price); err != nil {
		return nil, fmt.Errorf("GetCreditPackageByName: %w", mapError(err))
	}
	return p, nil
}

// CreateCreditPackage 新增方案；名稱唯一鍵衝突回傳 ErrDuplicate
func CreateCreditPackage(ctx context.Context, db database.DB, p *model.CreditPackage) (*model.CreditPackage, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO credit_packages (name, credit_amount, price)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.Name,
		p.CreditAmount,
		p.Price,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreateCreditPackage: %w", mapError(err))
	}
	return p, nil
}

// DeleteCreditPackage 刪除方案；影響零筆回傳 ErrNotFound
func DeleteCreditPackage(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM credit_packages WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteCreditPackage: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCreditPackage: %w", ErrNotFound)
	}
	return nil
}
