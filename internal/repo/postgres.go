package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

// NewPGStore returns the repository set backed by a Postgres pool.
func NewPGStore(db *pgxpool.Pool) Store {
	return Store{
		Users:         &PGUserRepo{db},
		Households:    &PGHouseholdRepo{db},
		Domains:       &PGDomainRepo{db},
		Tasks:         &PGTaskRepo{db},
		Discussions:   &PGDiscussionRepo{db},
		Shopping:      &PGShoppingRepo{db},
		Subscriptions: &PGSubscriptionRepo{db},
	}
}

func pgNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const taskColumns = `
	t.id, t.household_id, t.domain_id, t.owner_id, t.title, t.details,
	t.due_date, t.due_time, t.frequency_type, t.frequency_interval,
	t.is_completed, t.completed_at, t.is_snoozed, t.snoozed_until,
	t.notification_sent, t.created_at, t.updated_at,
	u.name AS owner_name, d.name AS domain_name`

const taskFrom = `
	FROM tasks t
	JOIN users u ON t.owner_id = u.id
	JOIN domains d ON t.domain_id = d.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.HouseholdID, &t.DomainID, &t.OwnerID, &t.Title, &t.Details,
		&t.DueDate, &t.DueTime, &t.FrequencyType, &t.FrequencyInterval,
		&t.IsCompleted, &t.CompletedAt, &t.IsSnoozed, &t.SnoozedUntil,
		&t.NotificationSent, &t.CreatedAt, &t.UpdatedAt,
		&t.OwnerName, &t.DomainName,
	)
	return t, err
}

// PGTaskRepo implements TaskRepo with Postgres.
type PGTaskRepo struct {
	db *pgxpool.Pool
}

func (r *PGTaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	query := `
		INSERT INTO tasks (
			id, household_id, domain_id, owner_id, title, details,
			due_date, due_time, frequency_type, frequency_interval,
			is_completed, is_snoozed, notification_sent, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.HouseholdID, t.DomainID, t.OwnerID, t.Title, t.Details,
		t.DueDate, t.DueTime, t.FrequencyType, t.FrequencyInterval,
		t.IsCompleted, t.IsSnoozed, t.NotificationSent, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, `SELECT`+taskColumns+taskFrom+` WHERE t.id = $1`, id))
	if err != nil {
		return domain.Task{}, pgNotFound(err)
	}
	return t, nil
}

func (r *PGTaskRepo) List(ctx context.Context, householdID, ownerID string) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.household_id = $1 AND ($2 = '' OR t.owner_id = $2)
		ORDER BY t.due_date ASC, t.due_time ASC`
	return r.list(ctx, query, householdID, ownerID)
}

func (r *PGTaskRepo) ListByDate(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.household_id = $1 AND t.due_date = $2
		ORDER BY t.due_time ASC`
	return r.list(ctx, query, householdID, date)
}

func (r *PGTaskRepo) ListAfterDate(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.household_id = $1 AND t.due_date <> '' AND t.due_date > $2
		ORDER BY t.due_date ASC, t.due_time ASC`
	return r.list(ctx, query, householdID, date)
}

func (r *PGTaskRepo) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	query := `
		UPDATE tasks SET
			domain_id = $2, owner_id = $3, title = $4, details = $5,
			due_date = $6, due_time = $7, frequency_type = $8, frequency_interval = $9,
			is_completed = $10, completed_at = $11, notification_sent = $12,
			is_snoozed = $13, snoozed_until = $14, updated_at = $15
		WHERE id = $1
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query,
		t.ID, t.DomainID, t.OwnerID, t.Title, t.Details,
		t.DueDate, t.DueTime, t.FrequencyType, t.FrequencyInterval,
		t.IsCompleted, t.CompletedAt, t.NotificationSent,
		t.IsSnoozed, t.SnoozedUntil, t.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return domain.Task{}, pgNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGTaskRepo) SetCompleted(ctx context.Context, id string, done bool, at time.Time) (domain.Task, error) {
	var completedAt *time.Time
	if done {
		completedAt = &at
	}
	query := `
		UPDATE tasks SET is_completed = $2, completed_at = $3, updated_at = $4
		WHERE id = $1
		RETURNING id`
	var got string
	err := r.db.QueryRow(ctx, query, id, done, completedAt, at).Scan(&got)
	if err != nil {
		return domain.Task{}, pgNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *PGTaskRepo) ListUnnotified(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.due_date <> '' AND t.notification_sent = FALSE`
	return r.list(ctx, query)
}

func (r *PGTaskRepo) MarkNotified(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE tasks SET notification_sent = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

const userColumns = `id, email, name, password_hash, household_id, role, created_at, updated_at`

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.HouseholdID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *PGUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query,
		u.ID, u.Email, u.Name, u.PasswordHash, u.HouseholdID, u.Role, u.CreatedAt, u.UpdatedAt,
	))
}

func (r *PGUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return domain.User{}, pgNotFound(err)
	}
	return u, nil
}

func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return domain.User{}, pgNotFound(err)
	}
	return u, nil
}

func (r *PGUserRepo) List(ctx context.Context, householdID string) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE household_id = $1 ORDER BY name ASC`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// PGHouseholdRepo implements HouseholdRepo with Postgres.
type PGHouseholdRepo struct {
	db *pgxpool.Pool
}

func (r *PGHouseholdRepo) Create(ctx context.Context, h domain.Household) (domain.Household, error) {
	query := `
		INSERT INTO households (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, created_at, updated_at`
	var out domain.Household
	err := r.db.QueryRow(ctx, query, h.ID, h.Name, h.CreatedAt, h.UpdatedAt).Scan(
		&out.ID, &out.Name, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGHouseholdRepo) GetByID(ctx context.Context, id string) (domain.Household, error) {
	var h domain.Household
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM households WHERE id = $1`, id,
	).Scan(&h.ID, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return domain.Household{}, pgNotFound(err)
	}
	return h, nil
}

// PGDomainRepo implements DomainRepo with Postgres.
type PGDomainRepo struct {
	db *pgxpool.Pool
}

const domainColumns = `
	d.id, d.household_id, d.owner_id, d.name, d.details,
	d.created_at, d.updated_at, u.name AS owner_name`

const domainFrom = ` FROM domains d JOIN users u ON d.owner_id = u.id`

func scanDomain(row rowScanner) (domain.Domain, error) {
	var d domain.Domain
	err := row.Scan(&d.ID, &d.HouseholdID, &d.OwnerID, &d.Name, &d.Details, &d.CreatedAt, &d.UpdatedAt, &d.OwnerName)
	return d, err
}

func (r *PGDomainRepo) Create(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	query := `
		INSERT INTO domains (id, household_id, owner_id, name, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, d.ID, d.HouseholdID, d.OwnerID, d.Name, d.Details, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return domain.Domain{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *PGDomainRepo) GetByID(ctx context.Context, id string) (domain.Domain, error) {
	d, err := scanDomain(r.db.QueryRow(ctx, `SELECT`+domainColumns+domainFrom+` WHERE d.id = $1`, id))
	if err != nil {
		return domain.Domain{}, pgNotFound(err)
	}
	return d, nil
}

func (r *PGDomainRepo) List(ctx context.Context, householdID string) ([]domain.Domain, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+domainColumns+domainFrom+` WHERE d.household_id = $1 ORDER BY d.name ASC`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Domain
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *PGDomainRepo) Update(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	query := `
		UPDATE domains SET owner_id = $2, name = $3, details = $4, updated_at = $5
		WHERE id = $1
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query, d.ID, d.OwnerID, d.Name, d.Details, d.UpdatedAt).Scan(&id)
	if err != nil {
		return domain.Domain{}, pgNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGDomainRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM domains WHERE id = $1`, id)
	return err
}

// PGDiscussionRepo implements DiscussionRepo with Postgres.
type PGDiscussionRepo struct {
	db *pgxpool.Pool
}

const discussionColumns = `
	i.id, i.household_id, i.created_by_id, i.title, i.details,
	i.is_resolved, i.resolved_at, i.created_at, i.updated_at,
	u.name AS created_by_name`

const discussionFrom = ` FROM discussion_items i JOIN users u ON i.created_by_id = u.id`

func scanDiscussion(row rowScanner) (domain.DiscussionItem, error) {
	var d domain.DiscussionItem
	err := row.Scan(&d.ID, &d.HouseholdID, &d.CreatedByID, &d.Title, &d.Details,
		&d.IsResolved, &d.ResolvedAt, &d.CreatedAt, &d.UpdatedAt, &d.CreatedByName)
	return d, err
}

func (r *PGDiscussionRepo) Create(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	query := `
		INSERT INTO discussion_items (id, household_id, created_by_id, title, details, is_resolved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, d.ID, d.HouseholdID, d.CreatedByID, d.Title, d.Details, d.IsResolved, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *PGDiscussionRepo) GetByID(ctx context.Context, id string) (domain.DiscussionItem, error) {
	d, err := scanDiscussion(r.db.QueryRow(ctx, `SELECT`+discussionColumns+discussionFrom+` WHERE i.id = $1`, id))
	if err != nil {
		return domain.DiscussionItem{}, pgNotFound(err)
	}
	return d, nil
}

func (r *PGDiscussionRepo) List(ctx context.Context, householdID string) ([]domain.DiscussionItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+discussionColumns+discussionFrom+` WHERE i.household_id = $1 ORDER BY i.created_at DESC`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.DiscussionItem
	for rows.Next() {
		d, err := scanDiscussion(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *PGDiscussionRepo) Update(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	query := `
		UPDATE discussion_items SET title = $2, details = $3, updated_at = $4
		WHERE id = $1
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query, d.ID, d.Title, d.Details, d.UpdatedAt).Scan(&id)
	if err != nil {
		return domain.DiscussionItem{}, pgNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGDiscussionRepo) SetResolved(ctx context.Context, id string, resolved bool, at time.Time) (domain.DiscussionItem, error) {
	var resolvedAt *time.Time
	if resolved {
		resolvedAt = &at
	}
	query := `
		UPDATE discussion_items SET is_resolved = $2, resolved_at = $3, updated_at = $4
		WHERE id = $1
		RETURNING id`
	var got string
	err := r.db.QueryRow(ctx, query, id, resolved, resolvedAt, at).Scan(&got)
	if err != nil {
		return domain.DiscussionItem{}, pgNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGDiscussionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM discussion_items WHERE id = $1`, id)
	return err
}

// PGShoppingRepo implements ShoppingRepo with Postgres.
type PGShoppingRepo struct {
	db *pgxpool.Pool
}

const shoppingColumns = `
	s.id, s.household_id, s.created_by_id, s.item_name, s.quantity, s.notes,
	s.is_purchased, s.purchased_by_id, s.purchased_at, s.created_at, s.updated_at,
	c.name AS created_by_name, COALESCE(p.name, '') AS purchased_by_name`

const shoppingFrom = `
	FROM shopping_list_items s
	JOIN users c ON s.created_by_id = c.id
	LEFT JOIN users p ON s.purchased_by_id = p.id`

func scanShoppingItem(row rowScanner) (domain.ShoppingListItem, error) {
	var it domain.ShoppingListItem
	var purchasedBy *string
	err := row.Scan(&it.ID, &it.HouseholdID, &it.CreatedByID, &it.ItemName, &it.Quantity, &it.Notes,
		&it.IsPurchased, &purchasedBy, &it.PurchasedAt, &it.CreatedAt, &it.UpdatedAt,
		&it.CreatedByName, &it.PurchasedByName)
	if purchasedBy != nil {
		it.PurchasedByID = *purchasedBy
	}
	return it, err
}

func (r *PGShoppingRepo) Create(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	query := `
		INSERT INTO shopping_list_items (id, household_id, created_by_id, item_name, quantity, notes, is_purchased, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		it.ID, it.HouseholdID, it.CreatedByID, it.ItemName, it.Quantity, it.Notes, it.IsPurchased, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *PGShoppingRepo) GetByID(ctx context.Context, id string) (domain.ShoppingListItem, error) {
	it, err := scanShoppingItem(r.db.QueryRow(ctx, `SELECT`+shoppingColumns+shoppingFrom+` WHERE s.id = $1`, id))
	if err != nil {
		return domain.ShoppingListItem{}, pgNotFound(err)
	}
	return it, nil
}

func (r *PGShoppingRepo) List(ctx context.Context, householdID string) ([]domain.ShoppingListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+shoppingColumns+shoppingFrom+` WHERE s.household_id = $1 ORDER BY s.created_at DESC`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.ShoppingListItem
	for rows.Next() {
		it, err := scanShoppingItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *PGShoppingRepo) Update(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	query := `
		UPDATE shopping_list_items SET item_name = $2, quantity = $3, notes = $4, updated_at = $5
		WHERE id = $1
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query, it.ID, it.ItemName, it.Quantity, it.Notes, it.UpdatedAt).Scan(&id)
	if err != nil {
		return domain.ShoppingListItem{}, pgNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGShoppingRepo) SetPurchased(ctx context.Context, id string, purchased bool, byID string, at time.Time) (domain.ShoppingListItem, error) {
	var purchasedBy *string
	var purchasedAt *time.Time
	if purchased {
		purchasedBy = &byID
		purchasedAt = &at
	}
	query := `
		UPDATE shopping_list_items SET is_purchased = $2, purchased_by_id = $3, purchased_at = $4, updated_at = $5
		WHERE id = $1
		RETURNING id`
	var got string
	err := r.db.QueryRow(ctx, query, id, purchased, purchasedBy, purchasedAt, at).Scan(&got)
	if err != nil {
		return domain.ShoppingListItem{}, pgNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGShoppingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM shopping_list_items WHERE id = $1`, id)
	return err
}

// PGSubscriptionRepo implements SubscriptionRepo with Postgres.
type PGSubscriptionRepo struct {
	db *pgxpool.Pool
}

func (r *PGSubscriptionRepo) Create(ctx context.Context, s domain.PushSubscription) (domain.PushSubscription, error) {
	query := `
		INSERT INTO push_subscriptions (id, endpoint, p256dh, auth, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, endpoint, p256dh, auth, created_at`
	var out domain.PushSubscription
	err := r.db.QueryRow(ctx, query, s.ID, s.Endpoint, s.P256dh, s.Auth, s.CreatedAt).Scan(
		&out.ID, &out.Endpoint, &out.P256dh, &out.Auth, &out.CreatedAt,
	)
	return out, err
}

func (r *PGSubscriptionRepo) List(ctx context.Context) ([]domain.PushSubscription, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, endpoint, p256dh, auth, created_at FROM push_subscriptions ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.PushSubscription
	for rows.Next() {
		var s domain.PushSubscription
		if err := rows.Scan(&s.ID, &s.Endpoint, &s.P256dh, &s.Auth, &s.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
