package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

// NewSQLiteStore returns the repository set backed by a database/sql
// handle opened with the modernc sqlite driver. The queries mirror
// the Postgres backend with ? placeholders.
func NewSQLiteStore(db *sql.DB) Store {
	return Store{
		Users:         &SQLiteUserRepo{db},
		Households:    &SQLiteHouseholdRepo{db},
		Domains:       &SQLiteDomainRepo{db},
		Tasks:         &SQLiteTaskRepo{db},
		Discussions:   &SQLiteDiscussionRepo{db},
		Shopping:      &SQLiteShoppingRepo{db},
		Subscriptions: &SQLiteSubscriptionRepo{db},
	}
}

func sqliteNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// SQLiteTaskRepo implements TaskRepo with SQLite.
type SQLiteTaskRepo struct {
	db *sql.DB
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	query := `
		INSERT INTO tasks (
			id, household_id, domain_id, owner_id, title, details,
			due_date, due_time, frequency_type, frequency_interval,
			is_completed, is_snoozed, notification_sent, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.HouseholdID, t.DomainID, t.OwnerID, t.Title, t.Details,
		t.DueDate, t.DueTime, t.FrequencyType, t.FrequencyInterval,
		t.IsCompleted, t.IsSnoozed, t.NotificationSent, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, `SELECT`+taskColumns+taskFrom+` WHERE t.id = ?`, id))
	if err != nil {
		return domain.Task{}, sqliteNotFound(err)
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, householdID, ownerID string) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.household_id = ? AND (? = '' OR t.owner_id = ?)
		ORDER BY t.due_date ASC, t.due_time ASC`
	return r.list(ctx, query, householdID, ownerID, ownerID)
}

func (r *SQLiteTaskRepo) ListByDate(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.household_id = ? AND t.due_date = ?
		ORDER BY t.due_time ASC`
	return r.list(ctx, query, householdID, date)
}

func (r *SQLiteTaskRepo) ListAfterDate(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.household_id = ? AND t.due_date <> '' AND t.due_date > ?
		ORDER BY t.due_date ASC, t.due_time ASC`
	return r.list(ctx, query, householdID, date)
}

func (r *SQLiteTaskRepo) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *SQLiteTaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	query := `
		UPDATE tasks SET
			domain_id = ?, owner_id = ?, title = ?, details = ?,
			due_date = ?, due_time = ?, frequency_type = ?, frequency_interval = ?,
			is_completed = ?, completed_at = ?, notification_sent = ?,
			is_snoozed = ?, snoozed_until = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.DomainID, t.OwnerID, t.Title, t.Details,
		t.DueDate, t.DueTime, t.FrequencyType, t.FrequencyInterval,
		t.IsCompleted, t.CompletedAt, t.NotificationSent,
		t.IsSnoozed, t.SnoozedUntil, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return domain.Task{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Task{}, ErrNotFound
	}
	return r.GetByID(ctx, t.ID)
}

func (r *SQLiteTaskRepo) SetCompleted(ctx context.Context, id string, done bool, at time.Time) (domain.Task, error) {
	var completedAt *time.Time
	if done {
		completedAt = &at
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET is_completed = ?, completed_at = ?, updated_at = ? WHERE id = ?`,
		done, completedAt, at, id)
	if err != nil {
		return domain.Task{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Task{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func (r *SQLiteTaskRepo) ListUnnotified(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + `
		WHERE t.due_date <> '' AND t.notification_sent = 0`
	return r.list(ctx, query)
}

func (r *SQLiteTaskRepo) MarkNotified(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET notification_sent = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SQLiteUserRepo implements UserRepo with SQLite.
type SQLiteUserRepo struct {
	db *sql.DB
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Email, u.Name, u.PasswordHash, u.HouseholdID, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	return r.GetByID(ctx, u.ID)
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, sqliteNotFound(err)
	}
	return u, nil
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		return domain.User{}, sqliteNotFound(err)
	}
	return u, nil
}

func (r *SQLiteUserRepo) List(ctx context.Context, householdID string) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE household_id = ? ORDER BY name ASC`, householdID)
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

// SQLiteHouseholdRepo implements HouseholdRepo with SQLite.
type SQLiteHouseholdRepo struct {
	db *sql.DB
}

func (r *SQLiteHouseholdRepo) Create(ctx context.Context, h domain.Household) (domain.Household, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO households (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		h.ID, h.Name, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return domain.Household{}, err
	}
	return r.GetByID(ctx, h.ID)
}

func (r *SQLiteHouseholdRepo) GetByID(ctx context.Context, id string) (domain.Household, error) {
	var h domain.Household
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM households WHERE id = ?`, id,
	).Scan(&h.ID, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return domain.Household{}, sqliteNotFound(err)
	}
	return h, nil
}

// SQLiteDomainRepo implements DomainRepo with SQLite.
type SQLiteDomainRepo struct {
	db *sql.DB
}

func (r *SQLiteDomainRepo) Create(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	query := `
		INSERT INTO domains (id, household_id, owner_id, name, details, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.HouseholdID, d.OwnerID, d.Name, d.Details, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return domain.Domain{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *SQLiteDomainRepo) GetByID(ctx context.Context, id string) (domain.Domain, error) {
	d, err := scanDomain(r.db.QueryRowContext(ctx, `SELECT`+domainColumns+domainFrom+` WHERE d.id = ?`, id))
	if err != nil {
		return domain.Domain{}, sqliteNotFound(err)
	}
	return d, nil
}

func (r *SQLiteDomainRepo) List(ctx context.Context, householdID string) ([]domain.Domain, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+domainColumns+domainFrom+` WHERE d.household_id = ? ORDER BY d.name ASC`, householdID)
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

func (r *SQLiteDomainRepo) Update(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE domains SET owner_id = ?, name = ?, details = ?, updated_at = ? WHERE id = ?`,
		d.OwnerID, d.Name, d.Details, d.UpdatedAt, d.ID)
	if err != nil {
		return domain.Domain{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Domain{}, ErrNotFound
	}
	return r.GetByID(ctx, d.ID)
}

func (r *SQLiteDomainRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM domains WHERE id = ?`, id)
	return err
}

// SQLiteDiscussionRepo implements DiscussionRepo with SQLite.
type SQLiteDiscussionRepo struct {
	db *sql.DB
}

func (r *SQLiteDiscussionRepo) Create(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	query := `
		INSERT INTO discussion_items (id, household_id, created_by_id, title, details, is_resolved, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.HouseholdID, d.CreatedByID, d.Title, d.Details, d.IsResolved, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *SQLiteDiscussionRepo) GetByID(ctx context.Context, id string) (domain.DiscussionItem, error) {
	d, err := scanDiscussion(r.db.QueryRowContext(ctx, `SELECT`+discussionColumns+discussionFrom+` WHERE i.id = ?`, id))
	if err != nil {
		return domain.DiscussionItem{}, sqliteNotFound(err)
	}
	return d, nil
}

func (r *SQLiteDiscussionRepo) List(ctx context.Context, householdID string) ([]domain.DiscussionItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+discussionColumns+discussionFrom+` WHERE i.household_id = ? ORDER BY i.created_at DESC`, householdID)
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

func (r *SQLiteDiscussionRepo) Update(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE discussion_items SET title = ?, details = ?, updated_at = ? WHERE id = ?`,
		d.Title, d.Details, d.UpdatedAt, d.ID)
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.DiscussionItem{}, ErrNotFound
	}
	return r.GetByID(ctx, d.ID)
}

func (r *SQLiteDiscussionRepo) SetResolved(ctx context.Context, id string, resolved bool, at time.Time) (domain.DiscussionItem, error) {
	var resolvedAt *time.Time
	if resolved {
		resolvedAt = &at
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE discussion_items SET is_resolved = ?, resolved_at = ?, updated_at = ? WHERE id = ?`,
		resolved, resolvedAt, at, id)
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.DiscussionItem{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteDiscussionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM discussion_items WHERE id = ?`, id)
	return err
}

// SQLiteShoppingRepo implements ShoppingRepo with SQLite.
type SQLiteShoppingRepo struct {
	db *sql.DB
}

func (r *SQLiteShoppingRepo) Create(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	query := `
		INSERT INTO shopping_list_items (id, household_id, created_by_id, item_name, quantity, notes, is_purchased, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID, it.HouseholdID, it.CreatedByID, it.ItemName, it.Quantity, it.Notes, it.IsPurchased, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *SQLiteShoppingRepo) GetByID(ctx context.Context, id string) (domain.ShoppingListItem, error) {
	it, err := scanShoppingItem(r.db.QueryRowContext(ctx, `SELECT`+shoppingColumns+shoppingFrom+` WHERE s.id = ?`, id))
	if err != nil {
		return domain.ShoppingListItem{}, sqliteNotFound(err)
	}
	return it, nil
}

func (r *SQLiteShoppingRepo) List(ctx context.Context, householdID string) ([]domain.ShoppingListItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+shoppingColumns+shoppingFrom+` WHERE s.household_id = ? ORDER BY s.created_at DESC`, householdID)
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

func (r *SQLiteShoppingRepo) Update(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shopping_list_items SET item_name = ?, quantity = ?, notes = ?, updated_at = ? WHERE id = ?`,
		it.ItemName, it.Quantity, it.Notes, it.UpdatedAt, it.ID)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ShoppingListItem{}, ErrNotFound
	}
	return r.GetByID(ctx, it.ID)
}

func (r *SQLiteShoppingRepo) SetPurchased(ctx context.Context, id string, purchased bool, byID string, at time.Time) (domain.ShoppingListItem, error) {
	var purchasedBy *string
	var purchasedAt *time.Time
	if purchased {
		purchasedBy = &byID
		purchasedAt = &at
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE shopping_list_items SET is_purchased = ?, purchased_by_id = ?, purchased_at = ?, updated_at = ? WHERE id = ?`,
		purchased, purchasedBy, purchasedAt, at, id)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ShoppingListItem{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteShoppingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shopping_list_items WHERE id = ?`, id)
	return err
}

// SQLiteSubscriptionRepo implements SubscriptionRepo with SQLite.
type SQLiteSubscriptionRepo struct {
	db *sql.DB
}

func (r *SQLiteSubscriptionRepo) Create(ctx context.Context, s domain.PushSubscription) (domain.PushSubscription, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO push_subscriptions (id, endpoint, p256dh, auth, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Endpoint, s.P256dh, s.Auth, s.CreatedAt)
	return s, err
}

func (r *SQLiteSubscriptionRepo) List(ctx context.Context) ([]domain.PushSubscription, error) {
	rows, err := r.db.QueryContext(ctx,
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
