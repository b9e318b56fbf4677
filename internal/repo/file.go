package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

// FileStore keeps the whole database as one JSON document on disk,
// the zero-dependency backend for single-host installs. Every
// operation is a mutex-guarded read-modify-write; saves go through a
// temp file and rename so a crash never leaves a half-written db.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the JSON file at path.
// The file and its directory are created lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Repos returns the repository set backed by this store.
func (s *FileStore) Repos() Store {
	return Store{
		Users:         &fileUserRepo{s},
		Households:    &fileHouseholdRepo{s},
		Domains:       &fileDomainRepo{s},
		Tasks:         &fileTaskRepo{s},
		Discussions:   &fileDiscussionRepo{s},
		Shopping:      &fileShoppingRepo{s},
		Subscriptions: &fileSubscriptionRepo{s},
	}
}

type fileDatabase struct {
	Users             []fileUser         `json:"users"`
	Households        []fileHousehold    `json:"households"`
	Domains           []fileDomain       `json:"domains"`
	Tasks             []fileTask         `json:"tasks"`
	DiscussionItems   []fileDiscussion   `json:"discussion_items"`
	ShoppingListItems []fileShoppingItem `json:"shopping_list_items"`
	PushSubscriptions []fileSubscription `json:"push_subscriptions"`
}

type fileUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	HouseholdID  string    `json:"household_id"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type fileHousehold struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type fileDomain struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type fileTask struct {
	ID                string     `json:"id"`
	HouseholdID       string     `json:"household_id"`
	DomainID          string     `json:"domain_id"`
	OwnerID           string     `json:"owner_id"`
	Title             string     `json:"title"`
	Details           string     `json:"details,omitempty"`
	DueDate           string     `json:"due_date,omitempty"`
	DueTime           string     `json:"due_time,omitempty"`
	FrequencyType     string     `json:"frequency_type,omitempty"`
	FrequencyInterval int        `json:"frequency_interval,omitempty"`
	IsCompleted       bool       `json:"is_completed"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	IsSnoozed         bool       `json:"is_snoozed"`
	SnoozedUntil      *time.Time `json:"snoozed_until,omitempty"`
	NotificationSent  bool       `json:"notification_sent"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type fileDiscussion struct {
	ID          string     `json:"id"`
	HouseholdID string     `json:"household_id"`
	CreatedByID string     `json:"created_by_id"`
	Title       string     `json:"title"`
	Details     string     `json:"details,omitempty"`
	IsResolved  bool       `json:"is_resolved"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type fileShoppingItem struct {
	ID            string     `json:"id"`
	HouseholdID   string     `json:"household_id"`
	CreatedByID   string     `json:"created_by_id"`
	ItemName      string     `json:"item_name"`
	Quantity      string     `json:"quantity,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	IsPurchased   bool       `json:"is_purchased"`
	PurchasedByID string     `json:"purchased_by_id,omitempty"`
	PurchasedAt   *time.Time `json:"purchased_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type fileSubscription struct {
	ID        string    `json:"id"`
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *FileStore) load() (fileDatabase, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return fileDatabase{}, nil
	}
	if err != nil {
		return fileDatabase{}, fmt.Errorf("read db file: %w", err)
	}
	var db fileDatabase
	if err := json.Unmarshal(data, &db); err != nil {
		return fileDatabase{}, fmt.Errorf("parse db file: %w", err)
	}
	return db, nil
}

func (s *FileStore) save(db fileDatabase) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write db file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace db file: %w", err)
	}
	return nil
}

// update runs fn under the lock against a fresh snapshot and persists
// the result if fn succeeds.
func (s *FileStore) update(fn func(db *fileDatabase) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&db); err != nil {
		return err
	}
	return s.save(db)
}

// view runs fn under the lock against a read-only snapshot.
func (s *FileStore) view(fn func(db fileDatabase) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.load()
	if err != nil {
		return err
	}
	return fn(db)
}

func (db fileDatabase) userName(id string) string {
	for _, u := range db.Users {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}

func (db fileDatabase) domainName(id string) string {
	for _, d := range db.Domains {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}

func (db fileDatabase) toTask(t fileTask) domain.Task {
	return domain.Task{
		ID:                t.ID,
		HouseholdID:       t.HouseholdID,
		DomainID:          t.DomainID,
		OwnerID:           t.OwnerID,
		Title:             t.Title,
		Details:           t.Details,
		DueDate:           t.DueDate,
		DueTime:           t.DueTime,
		FrequencyType:     t.FrequencyType,
		FrequencyInterval: t.FrequencyInterval,
		IsCompleted:       t.IsCompleted,
		CompletedAt:       t.CompletedAt,
		IsSnoozed:         t.IsSnoozed,
		SnoozedUntil:      t.SnoozedUntil,
		NotificationSent:  t.NotificationSent,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		OwnerName:         db.userName(t.OwnerID),
		DomainName:        db.domainName(t.DomainID),
	}
}

func fromTask(t domain.Task) fileTask {
	return fileTask{
		ID:                t.ID,
		HouseholdID:       t.HouseholdID,
		DomainID:          t.DomainID,
		OwnerID:           t.OwnerID,
		Title:             t.Title,
		Details:           t.Details,
		DueDate:           t.DueDate,
		DueTime:           t.DueTime,
		FrequencyType:     t.FrequencyType,
		FrequencyInterval: t.FrequencyInterval,
		IsCompleted:       t.IsCompleted,
		CompletedAt:       t.CompletedAt,
		IsSnoozed:         t.IsSnoozed,
		SnoozedUntil:      t.SnoozedUntil,
		NotificationSent:  t.NotificationSent,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type fileTaskRepo struct{ store *FileStore }

func (r *fileTaskRepo) Create(_ context.Context, t domain.Task) (domain.Task, error) {
	err := r.store.update(func(db *fileDatabase) error {
		db.Tasks = append(db.Tasks, fromTask(t))
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(context.Background(), t.ID)
}

func (r *fileTaskRepo) GetByID(_ context.Context, id string) (domain.Task, error) {
	var out domain.Task
	err := r.store.view(func(db fileDatabase) error {
		for _, t := range db.Tasks {
			if t.ID == id {
				out = db.toTask(t)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *fileTaskRepo) List(_ context.Context, householdID, ownerID string) ([]domain.Task, error) {
	return r.listWhere(func(t fileTask) bool {
		if t.HouseholdID != householdID {
			return false
		}
		return ownerID == "" || t.OwnerID == ownerID
	})
}

func (r *fileTaskRepo) ListByDate(_ context.Context, householdID, date string) ([]domain.Task, error) {
	return r.listWhere(func(t fileTask) bool {
		return t.HouseholdID == householdID && t.DueDate == date
	})
}

func (r *fileTaskRepo) ListAfterDate(_ context.Context, householdID, date string) ([]domain.Task, error) {
	return r.listWhere(func(t fileTask) bool {
		return t.HouseholdID == householdID && t.DueDate != "" && t.DueDate > date
	})
}

func (r *fileTaskRepo) listWhere(keep func(fileTask) bool) ([]domain.Task, error) {
	var out []domain.Task
	err := r.store.view(func(db fileDatabase) error {
		for _, t := range db.Tasks {
			if keep(t) {
				out = append(out, db.toTask(t))
			}
		}
		return nil
	})
	return out, err
}

func (r *fileTaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for i := range db.Tasks {
			if db.Tasks[i].ID == t.ID {
				db.Tasks[i] = fromTask(t)
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *fileTaskRepo) SetCompleted(ctx context.Context, id string, done bool, at time.Time) (domain.Task, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for i := range db.Tasks {
			if db.Tasks[i].ID == id {
				db.Tasks[i].IsCompleted = done
				if done {
					db.Tasks[i].CompletedAt = &at
				} else {
					db.Tasks[i].CompletedAt = nil
				}
				db.Tasks[i].UpdatedAt = at
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *fileTaskRepo) Delete(_ context.Context, id string) error {
	return r.store.update(func(db *fileDatabase) error {
		for i := range db.Tasks {
			if db.Tasks[i].ID == id {
				db.Tasks = append(db.Tasks[:i], db.Tasks[i+1:]...)
				return nil
			}
		}
		return nil // deleting a missing task is a no-op
	})
}

func (r *fileTaskRepo) ListUnnotified(_ context.Context) ([]domain.Task, error) {
	var out []domain.Task
	err := r.store.view(func(db fileDatabase) error {
		for _, t := range db.Tasks {
			if t.DueDate != "" && !t.NotificationSent {
				out = append(out, db.toTask(t))
			}
		}
		return nil
	})
	return out, err
}

func (r *fileTaskRepo) MarkNotified(_ context.Context, id string) error {
	return r.store.update(func(db *fileDatabase) error {
		for i := range db.Tasks {
			if db.Tasks[i].ID == id {
				db.Tasks[i].NotificationSent = true
				return nil
			}
		}
		return ErrNotFound
	})
}

type fileUserRepo struct{ store *FileStore }

func (r *fileUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for _, existing := range db.Users {
			if existing.Email == u.Email {
				return ErrDuplicate
			}
		}
		db.Users = append(db.Users, fileUser{
			ID: u.ID, Email: u.Email, Name: u.Name, PasswordHash: u.PasswordHash,
			HouseholdID: u.HouseholdID, Role: u.Role,
			CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
		})
		return nil
	})
	return u, err
}

func toUser(u fileUser) domain.User {
	return domain.User{
		ID: u.ID, Email: u.Email, Name: u.Name, PasswordHash: u.PasswordHash,
		HouseholdID: u.HouseholdID, Role: u.Role,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
}

func (r *fileUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	var out domain.User
	err := r.store.view(func(db fileDatabase) error {
		for _, u := range db.Users {
			if u.ID == id {
				out = toUser(u)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *fileUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	var out domain.User
	err := r.store.view(func(db fileDatabase) error {
		for _, u := range db.Users {
			if u.Email == email {
				out = toUser(u)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *fileUserRepo) List(_ context.Context, householdID string) ([]domain.User, error) {
	var out []domain.User
	err := r.store.view(func(db fileDatabase) error {
		for _, u := range db.Users {
			if u.HouseholdID == householdID {
				out = append(out, toUser(u))
			}
		}
		return nil
	})
	return out, err
}

type fileHouseholdRepo struct{ store *FileStore }

func (r *fileHouseholdRepo) Create(_ context.Context, h domain.Household) (domain.Household, error) {
	err := r.store.update(func(db *fileDatabase) error {
		db.Households = append(db.Households, fileHousehold{
			ID: h.ID, Name: h.Name, CreatedAt: h.CreatedAt, UpdatedAt: h.UpdatedAt,
		})
		return nil
	})
	return h, err
}

func (r *fileHouseholdRepo) GetByID(_ context.Context, id string) (domain.Household, error) {
	var out domain.Household
	err := r.store.view(func(db fileDatabase) error {
		for _, h := range db.Households {
			if h.ID == id {
				out = domain.Household{ID: h.ID, Name: h.Name, CreatedAt: h.CreatedAt, UpdatedAt: h.UpdatedAt}
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

type fileDomainRepo struct{ store *FileStore }

func (db fileDatabase) toDomain(d fileDomain) domain.Domain {
	return domain.Domain{
		ID: d.ID, HouseholdID: d.HouseholdID, OwnerID: d.OwnerID,
		Name: d.Name, Details: d.Details,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		OwnerName: db.userName(d.OwnerID),
	}
}

func (r *fileDomainRepo) Create(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	err := r.store.update(func(db *fileDatabase) error {
		db.Domains = append(db.Domains, fileDomain{
			ID: d.ID, HouseholdID: d.HouseholdID, OwnerID: d.OwnerID,
			Name: d.Name, Details: d.Details,
			CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		})
		return nil
	})
	if err != nil {
		return domain.Domain{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *fileDomainRepo) GetByID(_ context.Context, id string) (domain.Domain, error) {
	var out domain.Domain
	err := r.store.view(func(db fileDatabase) error {
		for _, d := range db.Domains {
			if d.ID == id {
				out = db.toDomain(d)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *fileDomainRepo) List(_ context.Context, householdID string) ([]domain.Domain, error) {
	var out []domain.Domain
	err := r.store.view(func(db fileDatabase) error {
		for _, d := range db.Domains {
			if d.HouseholdID == householdID {
				out = append(out, db.toDomain(d))
			}
		}
		return nil
	})
	return out, err
}

func (r *fileDomainRepo) Update(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for i := range db.Domains {
			if db.Domains[i].ID == d.ID {
				db.Domains[i].Name = d.Name
				db.Domains[i].Details = d.Details
				db.Domains[i].OwnerID = d.OwnerID
				db.Domains[i].UpdatedAt = d.UpdatedAt
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.Domain{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *fileDomainRepo) Delete(_ context.Context, id string) error {
	return r.store.update(func(db *fileDatabase) error {
		for i := range db.Domains {
			if db.Domains[i].ID == id {
				db.Domains = append(db.Domains[:i], db.Domains[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

type fileDiscussionRepo struct{ store *FileStore }

func (db fileDatabase) toDiscussion(d fileDiscussion) domain.DiscussionItem {
	return domain.DiscussionItem{
		ID: d.ID, HouseholdID: d.HouseholdID, CreatedByID: d.CreatedByID,
		Title: d.Title, Details: d.Details,
		IsResolved: d.IsResolved, ResolvedAt: d.ResolvedAt,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		CreatedByName: db.userName(d.CreatedByID),
	}
}

func (r *fileDiscussionRepo) Create(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	err := r.store.update(func(db *fileDatabase) error {
		db.DiscussionItems = append(db.DiscussionItems, fileDiscussion{
			ID: d.ID, HouseholdID: d.HouseholdID, CreatedByID: d.CreatedByID,
			Title: d.Title, Details: d.Details,
			IsResolved: d.IsResolved, ResolvedAt: d.ResolvedAt,
			CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		})
		return nil
	})
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *fileDiscussionRepo) GetByID(_ context.Context, id string) (domain.DiscussionItem, error) {
	var out domain.DiscussionItem
	err := r.store.view(func(db fileDatabase) error {
		for _, d := range db.DiscussionItems {
			if d.ID == id {
				out = db.toDiscussion(d)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *fileDiscussionRepo) List(_ context.Context, householdID string) ([]domain.DiscussionItem, error) {
	var out []domain.DiscussionItem
	err := r.store.view(func(db fileDatabase) error {
		for _, d := range db.DiscussionItems {
			if d.HouseholdID == householdID {
				out = append(out, db.toDiscussion(d))
			}
		}
		return nil
	})
	return out, err
}

func (r *fileDiscussionRepo) Update(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for i := range db.DiscussionItems {
			if db.DiscussionItems[i].ID == d.ID {
				db.DiscussionItems[i].Title = d.Title
				db.DiscussionItems[i].Details = d.Details
				db.DiscussionItems[i].UpdatedAt = d.UpdatedAt
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *fileDiscussionRepo) SetResolved(ctx context.Context, id string, resolved bool, at time.Time) (domain.DiscussionItem, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for i := range db.DiscussionItems {
			if db.DiscussionItems[i].ID == id {
				db.DiscussionItems[i].IsResolved = resolved
				if resolved {
					db.DiscussionItems[i].ResolvedAt = &at
				} else {
					db.DiscussionItems[i].ResolvedAt = nil
				}
				db.DiscussionItems[i].UpdatedAt = at
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *fileDiscussionRepo) Delete(_ context.Context, id string) error {
	return r.store.update(func(db *fileDatabase) error {
		for i := range db.DiscussionItems {
			if db.DiscussionItems[i].ID == id {
				db.DiscussionItems = append(db.DiscussionItems[:i], db.DiscussionItems[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

type fileShoppingRepo struct{ store *FileStore }

func (db fileDatabase) toShoppingItem(it fileShoppingItem) domain.ShoppingListItem {
	return domain.ShoppingListItem{
		ID: it.ID, HouseholdID: it.HouseholdID, CreatedByID: it.CreatedByID,
		ItemName: it.ItemName, Quantity: it.Quantity, Notes: it.Notes,
		IsPurchased: it.IsPurchased, PurchasedByID: it.PurchasedByID, PurchasedAt: it.PurchasedAt,
		CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt,
		CreatedByName:   db.userName(it.CreatedByID),
		PurchasedByName: db.userName(it.PurchasedByID),
	}
}

func (r *fileShoppingRepo) Create(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	err := r.store.update(func(db *fileDatabase) error {
		db.ShoppingListItems = append(db.ShoppingListItems, fileShoppingItem{
			ID: it.ID, HouseholdID: it.HouseholdID, CreatedByID: it.CreatedByID,
			ItemName: it.ItemName, Quantity: it.Quantity, Notes: it.Notes,
			IsPurchased: it.IsPurchased, PurchasedByID: it.PurchasedByID, PurchasedAt: it.PurchasedAt,
			CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt,
		})
		return nil
	})
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *fileShoppingRepo) GetByID(_ context.Context, id string) (domain.ShoppingListItem, error) {
	var out domain.ShoppingListItem
	err := r.store.view(func(db fileDatabase) error {
		for _, it := range db.ShoppingListItems {
			if it.ID == id {
				out = db.toShoppingItem(it)
				return nil
			}
		}
		return ErrNotFound
	})
	return out, err
}

func (r *fileShoppingRepo) List(_ context.Context, householdID string) ([]domain.ShoppingListItem, error) {
	var out []domain.ShoppingListItem
	err := r.store.view(func(db fileDatabase) error {
		for _, it := range db.ShoppingListItems {
			if it.HouseholdID == householdID {
				out = append(out, db.toShoppingItem(it))
			}
		}
		return nil
	})
	return out, err
}

func (r *fileShoppingRepo) Update(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for i := range db.ShoppingListItems {
			if db.ShoppingListItems[i].ID == it.ID {
				db.ShoppingListItems[i].ItemName = it.ItemName
				db.ShoppingListItems[i].Quantity = it.Quantity
				db.ShoppingListItems[i].Notes = it.Notes
				db.ShoppingListItems[i].UpdatedAt = it.UpdatedAt
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *fileShoppingRepo) SetPurchased(ctx context.Context, id string, purchased bool, byID string, at time.Time) (domain.ShoppingListItem, error) {
	err := r.store.update(func(db *fileDatabase) error {
		for i := range db.ShoppingListItems {
			if db.ShoppingListItems[i].ID == id {
				db.ShoppingListItems[i].IsPurchased = purchased
				if purchased {
					db.ShoppingListItems[i].PurchasedByID = byID
					db.ShoppingListItems[i].PurchasedAt = &at
				} else {
					db.ShoppingListItems[i].PurchasedByID = ""
					db.ShoppingListItems[i].PurchasedAt = nil
				}
				db.ShoppingListItems[i].UpdatedAt = at
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *fileShoppingRepo) Delete(_ context.Context, id string) error {
	return r.store.update(func(db *fileDatabase) error {
		for i := range db.ShoppingListItems {
			if db.ShoppingListItems[i].ID == id {
				db.ShoppingListItems = append(db.ShoppingListItems[:i], db.ShoppingListItems[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

type fileSubscriptionRepo struct{ store *FileStore }

func (r *fileSubscriptionRepo) Create(_ context.Context, sub domain.PushSubscription) (domain.PushSubscription, error) {
	err := r.store.update(func(db *fileDatabase) error {
		db.PushSubscriptions = append(db.PushSubscriptions, fileSubscription{
			ID: sub.ID, Endpoint: sub.Endpoint, P256dh: sub.P256dh, Auth: sub.Auth,
			CreatedAt: sub.CreatedAt,
		})
		return nil
	})
	return sub, err
}

func (r *fileSubscriptionRepo) List(_ context.Context) ([]domain.PushSubscription, error) {
	var out []domain.PushSubscription
	err := r.store.view(func(db fileDatabase) error {
		for _, s := range db.PushSubscriptions {
			out = append(out, domain.PushSubscription{
				ID: s.ID, Endpoint: s.Endpoint, P256dh: s.P256dh, Auth: s.Auth,
				CreatedAt: s.CreatedAt,
			})
		}
		return nil
	})
	return out, err
}
