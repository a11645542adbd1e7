package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/order"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/infrastructure/database"
)

// PostgresOrderRepository implements order.Repository on PostgreSQL
type PostgresOrderRepository struct {
	db *database.PostgresDB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *database.PostgresDB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

const orderColumns = "id, retailer_id, member_id, base_amount, discount_amount, net_amount, igst_amount, cgst_amount, sgst_amount, total_amount, order_type, order_status, is_active, created_at, updated_at"

func scanOrder(row pgx.Row, id string) (*order.Order, error) {
	o := &order.Order{}
	err := row.Scan(
		&o.ID, &o.RetailerID, &o.MemberID,
		&o.BaseAmount, &o.DiscountAmount, &o.NetAmount,
		&o.IGSTAmount, &o.CGSTAmount, &o.SGSTAmount, &o.TotalAmount,
		&o.OrderType, &o.OrderStatus, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("order", id)
		}
		return nil, domainerr.NewOperation("order.find", err)
	}
	return o, nil
}

// Create implements order.Repository.Create
func (r *PostgresOrderRepository) Create(ctx context.Context, o *order.Order) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO orders (`+orderColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			o.ID, o.RetailerID, o.MemberID,
			o.BaseAmount, o.DiscountAmount, o.NetAmount,
			o.IGSTAmount, o.CGSTAmount, o.SGSTAmount, o.TotalAmount,
			o.OrderType, o.OrderStatus, o.IsActive, o.CreatedAt, o.UpdatedAt,
		)
		if err != nil {
			return translatePgError(err, "order.create", "order", "retailer_id", o.RetailerID)
		}

		for _, item := range o.Items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_items (id, order_id, product_id, quantity, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				item.ID, item.OrderID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
			); err != nil {
				return translatePgError(err, "order.create", "order item", "product_id", item.ProductID)
			}
		}

		return nil
	})
}

func loadItems(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, orderID string) ([]order.Item, error) {
	rows, err := q.Query(ctx,
		"SELECT id, order_id, product_id, quantity, created_at, updated_at FROM order_items WHERE order_id = $1 ORDER BY created_at ASC",
		orderID)
	if err != nil {
		return nil, domainerr.NewOperation("order.load_items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var item order.Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, domainerr.NewOperation("order.load_items", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("order.load_items", err)
	}

	return items, nil
}

// FindByID implements order.Repository.FindByID
func (r *PostgresOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	o, err := scanOrder(conn.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1 AND is_active = true", id), id)
	if err != nil {
		return nil, err
	}

	o.Items, err = loadItems(ctx, conn, id)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// FindDetail implements order.Repository.FindDetail
func (r *PostgresOrderRepository) FindDetail(ctx context.Context, id string) (*order.Detail, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	detail := &order.Detail{}
	o := &detail.Order
	err = conn.QueryRow(ctx,
		`SELECT o.id, o.retailer_id, o.member_id,
		        o.base_amount, o.discount_amount, o.net_amount,
		        o.igst_amount, o.cgst_amount, o.sgst_amount, o.total_amount,
		        o.order_type, o.order_status, o.is_active, o.created_at, o.updated_at,
		        rt.name, m.name
		 FROM orders o
		 JOIN retailer rt ON rt.id = o.retailer_id
		 JOIN public.members m ON m.id = o.member_id
		 WHERE o.id = $1 AND o.is_active = true`,
		id).Scan(
		&o.ID, &o.RetailerID, &o.MemberID,
		&o.BaseAmount, &o.DiscountAmount, &o.NetAmount,
		&o.IGSTAmount, &o.CGSTAmount, &o.SGSTAmount, &o.TotalAmount,
		&o.OrderType, &o.OrderStatus, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
		&detail.RetailerName, &detail.MemberName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.NewNotFound("order", id)
		}
		return nil, domainerr.NewOperation("order.find_detail", err)
	}

	rows, err := conn.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.created_at, oi.updated_at, p.name, p.code
		 FROM order_items oi
		 JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = $1
		 ORDER BY oi.created_at ASC`,
		id)
	if err != nil {
		return nil, domainerr.NewOperation("order.find_detail", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item order.ItemDetail
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&item.ProductName, &item.ProductCode,
		); err != nil {
			return nil, domainerr.NewOperation("order.find_detail", err)
		}
		detail.Items = append(detail.Items, item)
		detail.Order.Items = append(detail.Order.Items, item.Item)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("order.find_detail", err)
	}

	return detail, nil
}

func buildOrderFilter(filter order.Filter) (string, []interface{}) {
	conditions := []string{"is_active = true"}
	var args []interface{}

	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.RetailerID != nil {
		add("retailer_id = $%d", *filter.RetailerID)
	}
	if filter.MemberID != nil {
		add("member_id = $%d", *filter.MemberID)
	}
	if filter.Status != nil {
		add("order_status = $%d", *filter.Status)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}

	return strings.Join(conditions, " AND "), args
}

// List implements order.Repository.List
func (r *PostgresOrderRepository) List(ctx context.Context, filter order.Filter, limit, offset int) ([]*order.Order, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	where, args := buildOrderFilter(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		"SELECT %s FROM orders WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		orderColumns, where, len(args)-1, len(args))

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, domainerr.NewOperation("order.list", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o := &order.Order{}
		if err := rows.Scan(
			&o.ID, &o.RetailerID, &o.MemberID,
			&o.BaseAmount, &o.DiscountAmount, &o.NetAmount,
			&o.IGSTAmount, &o.CGSTAmount, &o.SGSTAmount, &o.TotalAmount,
			&o.OrderType, &o.OrderStatus, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, domainerr.NewOperation("order.list", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.NewOperation("order.list", err)
	}

	return orders, nil
}

// Count implements order.Repository.Count
func (r *PostgresOrderRepository) Count(ctx context.Context, filter order.Filter) (int, error) {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	where, args := buildOrderFilter(filter)
	var count int
	if err := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM orders WHERE "+where, args...).Scan(&count); err != nil {
		return 0, domainerr.NewOperation("order.count", err)
	}
	return count, nil
}

// UpsertItems implements order.Repository.UpsertItems. Requested lines update
// the quantity of an existing product row or insert a new one; lines absent
// from the request are left untouched. The amounts are recomputed from the
// complete post-upsert item set inside the same transaction.
func (r *PostgresOrderRepository) UpsertItems(ctx context.Context, orderID string, items []order.ItemRequest, recompute func(all []order.ItemRequest) (order.Amounts, error)) (*order.Order, error) {
	var result *order.Order

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		o, err := scanOrder(tx.QueryRow(ctx,
			"SELECT "+orderColumns+" FROM orders WHERE id = $1 AND is_active = true FOR UPDATE", orderID), orderID)
		if err != nil {
			return err
		}
		if o.OrderStatus != order.StatusDraft {
			return domainerr.NewValidation("order_status", "items can only be changed while the order is %s", order.StatusDraft)
		}

		current, err := loadItems(ctx, tx, orderID)
		if err != nil {
			return err
		}
		existing := make(map[string]*order.Item, len(current))
		for i := range current {
			existing[current[i].ProductID] = &current[i]
		}

		now := time.Now()
		for _, req := range items {
			if line, ok := existing[req.ProductID]; ok {
				if _, err := tx.Exec(ctx,
					"UPDATE order_items SET quantity = $2, updated_at = $3 WHERE id = $1",
					line.ID, req.Quantity, now,
				); err != nil {
					return domainerr.NewOperation("order.upsert_items", err)
				}
				line.Quantity = req.Quantity
				continue
			}

			item := order.Item{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_items (id, order_id, product_id, quantity, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				item.ID, item.OrderID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
			); err != nil {
				return translatePgError(err, "order.upsert_items", "order item", "product_id", req.ProductID)
			}
			current = append(current, item)
		}

		all := make([]order.ItemRequest, 0, len(current))
		for _, item := range current {
			all = append(all, order.ItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
		}

		amounts, err := recompute(all)
		if err != nil {
			return err
		}
		o.ApplyAmounts(amounts)

		if _, err := tx.Exec(ctx,
			`UPDATE orders
			 SET base_amount = $2, discount_amount = $3, net_amount = $4,
			     igst_amount = $5, cgst_amount = $6, sgst_amount = $7,
			     total_amount = $8, updated_at = $9
			 WHERE id = $1`,
			o.ID, o.BaseAmount, o.DiscountAmount, o.NetAmount,
			o.IGSTAmount, o.CGSTAmount, o.SGSTAmount, o.TotalAmount, o.UpdatedAt,
		); err != nil {
			return domainerr.NewOperation("order.upsert_items", err)
		}

		o.Items = current
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateStatus implements order.Repository.UpdateStatus. The transition is
// validated against the current row under lock so concurrent moves cannot
// skip a state.
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id string, next order.Status) (*order.Order, error) {
	var result *order.Order

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		o, err := scanOrder(tx.QueryRow(ctx,
			"SELECT "+orderColumns+" FROM orders WHERE id = $1 AND is_active = true FOR UPDATE", id), id)
		if err != nil {
			return err
		}

		if err := order.ValidateTransition(o.OrderStatus, next); err != nil {
			return err
		}

		o.OrderStatus = next
		o.UpdatedAt = time.Now()
		if _, err := tx.Exec(ctx,
			"UPDATE orders SET order_status = $2, updated_at = $3 WHERE id = $1",
			o.ID, o.OrderStatus, o.UpdatedAt,
		); err != nil {
			return domainerr.NewOperation("order.update_status", err)
		}

		o.Items, err = loadItems(ctx, tx, id)
		if err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Deactivate implements order.Repository.Deactivate
func (r *PostgresOrderRepository) Deactivate(ctx context.Context, id string) error {
	conn, err := r.db.GetCompanyConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE orders SET is_active = false, updated_at = $2 WHERE id = $1 AND is_active = true",
		id, time.Now())
	if err != nil {
		return domainerr.NewOperation("order.deactivate", err)
	}
	if result.RowsAffected() == 0 {
		return domainerr.NewNotFound("order", id)
	}

	return nil
}
