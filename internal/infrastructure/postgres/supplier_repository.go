package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, s.Name, s.ContactEmail, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Link asocia un proveedor a un producto (upsert sobre la relación).
func (r *SupplierRepo) Link(ctx context.Context, link *entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (company_id, product_id, supplier_id, preferred, lead_time_days)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET preferred = EXCLUDED.preferred, lead_time_days = EXCLUDED.lead_time_days`
	_, err := r.q.Exec(ctx, query, link.CompanyID, link.ProductID, link.SupplierID, link.Preferred, link.LeadTimeDays)
	if err != nil {
		return fmt.Errorf("link supplier: %w", err)
	}
	return nil
}

// FirstLinkedSupplierID devuelve el proveedor enlazado de menor lead time
// (empate por id menor), o nil si no hay enlaces. preferredOnly restringe a
// los marcados como preferidos.
func (r *SupplierRepo) FirstLinkedSupplierID(ctx context.Context, companyID, productID int64, preferredOnly bool) (*int64, error) {
	query := `
		SELECT supplier_id FROM product_suppliers
		WHERE company_id = $1 AND product_id = $2`
	if preferredOnly {
		query += ` AND preferred = true`
	}
	query += ` ORDER BY lead_time_days ASC, supplier_id ASC LIMIT 1`

	var id int64
	err := r.q.QueryRow(ctx, query, companyID, productID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("first linked supplier: %w", err)
	}
	return &id, nil
}
