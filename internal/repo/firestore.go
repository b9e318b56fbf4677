package repo

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

// Firestore collection names.
const (
	colUsers         = "users"
	colHouseholds    = "households"
	colDomains       = "domains"
	colTasks         = "tasks"
	colDiscussions   = "discussionItems"
	colShopping      = "shoppingListItems"
	colSubscriptions = "pushSubscriptions"
)

// NewFirestoreStore returns the repository set backed by a Firestore
// client. Queries stick to equality filters and sort on the client so
// no composite indexes are required; owner/domain names are
// denormalized onto the stored documents.
func NewFirestoreStore(client *firestore.Client) Store {
	return Store{
		Users:         &FSUserRepo{client},
		Households:    &FSHouseholdRepo{client},
		Domains:       &FSDomainRepo{client},
		Tasks:         &FSTaskRepo{client},
		Discussions:   &FSDiscussionRepo{client},
		Shopping:      &FSShoppingRepo{client},
		Subscriptions: &FSSubscriptionRepo{client},
	}
}

func fsNotFound(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

type fsTaskDoc struct {
	HouseholdID       string     `firestore:"householdId"`
	DomainID          string     `firestore:"domainId"`
	OwnerID           string     `firestore:"ownerId"`
	Title             string     `firestore:"title"`
	Details           string     `firestore:"details"`
	DueDate           string     `firestore:"dueDate"`
	DueTime           string     `firestore:"dueTime"`
	FrequencyType     string     `firestore:"frequencyType"`
	FrequencyInterval int        `firestore:"frequencyInterval"`
	IsCompleted       bool       `firestore:"isCompleted"`
	CompletedAt       *time.Time `firestore:"completedAt"`
	IsSnoozed         bool       `firestore:"isSnoozed"`
	SnoozedUntil      *time.Time `firestore:"snoozedUntil"`
	NotificationSent  bool       `firestore:"notificationSent"`
	CreatedAt         time.Time  `firestore:"createdAt"`
	UpdatedAt         time.Time  `firestore:"updatedAt"`
	OwnerName         string     `firestore:"ownerName"`
	DomainName        string     `firestore:"domainName"`
}

func (d fsTaskDoc) toTask(id string) domain.Task {
	return domain.Task{
		ID:                id,
		HouseholdID:       d.HouseholdID,
		DomainID:          d.DomainID,
		OwnerID:           d.OwnerID,
		Title:             d.Title,
		Details:           d.Details,
		DueDate:           d.DueDate,
		DueTime:           d.DueTime,
		FrequencyType:     d.FrequencyType,
		FrequencyInterval: d.FrequencyInterval,
		IsCompleted:       d.IsCompleted,
		CompletedAt:       d.CompletedAt,
		IsSnoozed:         d.IsSnoozed,
		SnoozedUntil:      d.SnoozedUntil,
		NotificationSent:  d.NotificationSent,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		OwnerName:         d.OwnerName,
		DomainName:        d.DomainName,
	}
}

// FSTaskRepo implements TaskRepo with Firestore.
type FSTaskRepo struct {
	client *firestore.Client
}

func (r *FSTaskRepo) docFor(ctx context.Context, t domain.Task) (fsTaskDoc, error) {
	doc := fsTaskDoc{
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
	// Denormalize display names onto the document.
	if snap, err := r.client.Collection(colUsers).Doc(t.OwnerID).Get(ctx); err == nil {
		var u fsUserDoc
		if err := snap.DataTo(&u); err == nil {
			doc.OwnerName = u.Name
		}
	}
	if snap, err := r.client.Collection(colDomains).Doc(t.DomainID).Get(ctx); err == nil {
		var d fsDomainDoc
		if err := snap.DataTo(&d); err == nil {
			doc.DomainName = d.Name
		}
	}
	return doc, nil
}

func (r *FSTaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	doc, err := r.docFor(ctx, t)
	if err != nil {
		return domain.Task{}, err
	}
	if _, err := r.client.Collection(colTasks).Doc(t.ID).Create(ctx, doc); err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *FSTaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	snap, err := r.client.Collection(colTasks).Doc(id).Get(ctx)
	if err != nil {
		return domain.Task{}, fsNotFound(err)
	}
	var doc fsTaskDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Task{}, err
	}
	return doc.toTask(snap.Ref.ID), nil
}

func (r *FSTaskRepo) query(ctx context.Context, q firestore.Query) ([]domain.Task, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()
	var list []domain.Task
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc fsTaskDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc.toTask(snap.Ref.ID))
	}
	return list, nil
}

func sortTasksBySchedule(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].DueDate != tasks[j].DueDate {
			return tasks[i].DueDate < tasks[j].DueDate
		}
		return tasks[i].DueTime < tasks[j].DueTime
	})
}

func (r *FSTaskRepo) List(ctx context.Context, householdID, ownerID string) ([]domain.Task, error) {
	q := r.client.Collection(colTasks).Where("householdId", "==", householdID)
	if ownerID != "" {
		q = q.Where("ownerId", "==", ownerID)
	}
	list, err := r.query(ctx, q)
	if err != nil {
		return nil, err
	}
	sortTasksBySchedule(list)
	return list, nil
}

func (r *FSTaskRepo) ListByDate(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	q := r.client.Collection(colTasks).
		Where("householdId", "==", householdID).
		Where("dueDate", "==", date)
	list, err := r.query(ctx, q)
	if err != nil {
		return nil, err
	}
	sortTasksBySchedule(list)
	return list, nil
}

func (r *FSTaskRepo) ListAfterDate(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	// Single equality filter, then narrow on the client; range filters
	// combined with equality need a composite index here.
	list, err := r.query(ctx, r.client.Collection(colTasks).Where("householdId", "==", householdID))
	if err != nil {
		return nil, err
	}
	var out []domain.Task
	for _, t := range list {
		if t.DueDate != "" && t.DueDate > date {
			out = append(out, t)
		}
	}
	sortTasksBySchedule(out)
	return out, nil
}

func (r *FSTaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	if _, err := r.GetByID(ctx, t.ID); err != nil {
		return domain.Task{}, err
	}
	doc, err := r.docFor(ctx, t)
	if err != nil {
		return domain.Task{}, err
	}
	if _, err := r.client.Collection(colTasks).Doc(t.ID).Set(ctx, doc); err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *FSTaskRepo) SetCompleted(ctx context.Context, id string, done bool, at time.Time) (domain.Task, error) {
	var completedAt any
	if done {
		completedAt = at
	} else {
		completedAt = nil
	}
	_, err := r.client.Collection(colTasks).Doc(id).Update(ctx, []firestore.Update{
		{Path: "isCompleted", Value: done},
		{Path: "completedAt", Value: completedAt},
		{Path: "updatedAt", Value: at},
	})
	if err != nil {
		return domain.Task{}, fsNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *FSTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(colTasks).Doc(id).Delete(ctx)
	return err
}

func (r *FSTaskRepo) ListUnnotified(ctx context.Context) ([]domain.Task, error) {
	list, err := r.query(ctx, r.client.Collection(colTasks).Where("notificationSent", "==", false))
	if err != nil {
		return nil, err
	}
	var out []domain.Task
	for _, t := range list {
		if t.DueDate != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *FSTaskRepo) MarkNotified(ctx context.Context, id string) error {
	_, err := r.client.Collection(colTasks).Doc(id).Update(ctx, []firestore.Update{
		{Path: "notificationSent", Value: true},
	})
	return fsNotFound(err)
}

type fsUserDoc struct {
	Email        string    `firestore:"email"`
	Name         string    `firestore:"name"`
	PasswordHash string    `firestore:"passwordHash"`
	HouseholdID  string    `firestore:"householdId"`
	Role         string    `firestore:"role"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

func (d fsUserDoc) toUser(id string) domain.User {
	return domain.User{
		ID: id, Email: d.Email, Name: d.Name, PasswordHash: d.PasswordHash,
		HouseholdID: d.HouseholdID, Role: d.Role,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

// FSUserRepo implements UserRepo with Firestore.
type FSUserRepo struct {
	client *firestore.Client
}

func (r *FSUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	doc := fsUserDoc{
		Email: u.Email, Name: u.Name, PasswordHash: u.PasswordHash,
		HouseholdID: u.HouseholdID, Role: u.Role,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
	if _, err := r.client.Collection(colUsers).Doc(u.ID).Create(ctx, doc); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *FSUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	snap, err := r.client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		return domain.User{}, fsNotFound(err)
	}
	var doc fsUserDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.User{}, err
	}
	return doc.toUser(snap.Ref.ID), nil
}

func (r *FSUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	iter := r.client.Collection(colUsers).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err == iterator.Done {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	var doc fsUserDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.User{}, err
	}
	return doc.toUser(snap.Ref.ID), nil
}

func (r *FSUserRepo) List(ctx context.Context, householdID string) ([]domain.User, error) {
	iter := r.client.Collection(colUsers).Where("householdId", "==", householdID).Documents(ctx)
	defer iter.Stop()
	var list []domain.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc fsUserDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc.toUser(snap.Ref.ID))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

type fsHouseholdDoc struct {
	Name      string    `firestore:"name"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FSHouseholdRepo implements HouseholdRepo with Firestore.
type FSHouseholdRepo struct {
	client *firestore.Client
}

func (r *FSHouseholdRepo) Create(ctx context.Context, h domain.Household) (domain.Household, error) {
	doc := fsHouseholdDoc{Name: h.Name, CreatedAt: h.CreatedAt, UpdatedAt: h.UpdatedAt}
	if _, err := r.client.Collection(colHouseholds).Doc(h.ID).Create(ctx, doc); err != nil {
		return domain.Household{}, err
	}
	return h, nil
}

func (r *FSHouseholdRepo) GetByID(ctx context.Context, id string) (domain.Household, error) {
	snap, err := r.client.Collection(colHouseholds).Doc(id).Get(ctx)
	if err != nil {
		return domain.Household{}, fsNotFound(err)
	}
	var doc fsHouseholdDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Household{}, err
	}
	return domain.Household{ID: snap.Ref.ID, Name: doc.Name, CreatedAt: doc.CreatedAt, UpdatedAt: doc.UpdatedAt}, nil
}

type fsDomainDoc struct {
	HouseholdID string    `firestore:"householdId"`
	OwnerID     string    `firestore:"ownerId"`
	Name        string    `firestore:"name"`
	Details     string    `firestore:"details"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
	OwnerName   string    `firestore:"ownerName"`
}

func (d fsDomainDoc) toDomain(id string) domain.Domain {
	return domain.Domain{
		ID: id, HouseholdID: d.HouseholdID, OwnerID: d.OwnerID,
		Name: d.Name, Details: d.Details,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		OwnerName: d.OwnerName,
	}
}

// FSDomainRepo implements DomainRepo with Firestore.
type FSDomainRepo struct {
	client *firestore.Client
}

func (r *FSDomainRepo) docFor(ctx context.Context, d domain.Domain) fsDomainDoc {
	doc := fsDomainDoc{
		HouseholdID: d.HouseholdID, OwnerID: d.OwnerID,
		Name: d.Name, Details: d.Details,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
	if snap, err := r.client.Collection(colUsers).Doc(d.OwnerID).Get(ctx); err == nil {
		var u fsUserDoc
		if err := snap.DataTo(&u); err == nil {
			doc.OwnerName = u.Name
		}
	}
	return doc
}

func (r *FSDomainRepo) Create(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	if _, err := r.client.Collection(colDomains).Doc(d.ID).Create(ctx, r.docFor(ctx, d)); err != nil {
		return domain.Domain{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *FSDomainRepo) GetByID(ctx context.Context, id string) (domain.Domain, error) {
	snap, err := r.client.Collection(colDomains).Doc(id).Get(ctx)
	if err != nil {
		return domain.Domain{}, fsNotFound(err)
	}
	var doc fsDomainDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Domain{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

func (r *FSDomainRepo) List(ctx context.Context, householdID string) ([]domain.Domain, error) {
	iter := r.client.Collection(colDomains).Where("householdId", "==", householdID).Documents(ctx)
	defer iter.Stop()
	var list []domain.Domain
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc fsDomainDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc.toDomain(snap.Ref.ID))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *FSDomainRepo) Update(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	if _, err := r.GetByID(ctx, d.ID); err != nil {
		return domain.Domain{}, err
	}
	if _, err := r.client.Collection(colDomains).Doc(d.ID).Set(ctx, r.docFor(ctx, d)); err != nil {
		return domain.Domain{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *FSDomainRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(colDomains).Doc(id).Delete(ctx)
	return err
}

type fsDiscussionDoc struct {
	HouseholdID   string     `firestore:"householdId"`
	CreatedByID   string     `firestore:"createdById"`
	Title         string     `firestore:"title"`
	Details       string     `firestore:"details"`
	IsResolved    bool       `firestore:"isResolved"`
	ResolvedAt    *time.Time `firestore:"resolvedAt"`
	CreatedAt     time.Time  `firestore:"createdAt"`
	UpdatedAt     time.Time  `firestore:"updatedAt"`
	CreatedByName string     `firestore:"createdByName"`
}

func (d fsDiscussionDoc) toDiscussion(id string) domain.DiscussionItem {
	return domain.DiscussionItem{
		ID: id, HouseholdID: d.HouseholdID, CreatedByID: d.CreatedByID,
		Title: d.Title, Details: d.Details,
		IsResolved: d.IsResolved, ResolvedAt: d.ResolvedAt,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		CreatedByName: d.CreatedByName,
	}
}

// FSDiscussionRepo implements DiscussionRepo with Firestore.
type FSDiscussionRepo struct {
	client *firestore.Client
}

func (r *FSDiscussionRepo) docFor(ctx context.Context, d domain.DiscussionItem) fsDiscussionDoc {
	doc := fsDiscussionDoc{
		HouseholdID: d.HouseholdID, CreatedByID: d.CreatedByID,
		Title: d.Title, Details: d.Details,
		IsResolved: d.IsResolved, ResolvedAt: d.ResolvedAt,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
	if snap, err := r.client.Collection(colUsers).Doc(d.CreatedByID).Get(ctx); err == nil {
		var u fsUserDoc
		if err := snap.DataTo(&u); err == nil {
			doc.CreatedByName = u.Name
		}
	}
	return doc
}

func (r *FSDiscussionRepo) Create(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	if _, err := r.client.Collection(colDiscussions).Doc(d.ID).Create(ctx, r.docFor(ctx, d)); err != nil {
		return domain.DiscussionItem{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *FSDiscussionRepo) GetByID(ctx context.Context, id string) (domain.DiscussionItem, error) {
	snap, err := r.client.Collection(colDiscussions).Doc(id).Get(ctx)
	if err != nil {
		return domain.DiscussionItem{}, fsNotFound(err)
	}
	var doc fsDiscussionDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.DiscussionItem{}, err
	}
	return doc.toDiscussion(snap.Ref.ID), nil
}

func (r *FSDiscussionRepo) List(ctx context.Context, householdID string) ([]domain.DiscussionItem, error) {
	iter := r.client.Collection(colDiscussions).Where("householdId", "==", householdID).Documents(ctx)
	defer iter.Stop()
	var list []domain.DiscussionItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc fsDiscussionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc.toDiscussion(snap.Ref.ID))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *FSDiscussionRepo) Update(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error) {
	existing, err := r.GetByID(ctx, d.ID)
	if err != nil {
		return domain.DiscussionItem{}, err
	}
	existing.Title = d.Title
	existing.Details = d.Details
	existing.UpdatedAt = d.UpdatedAt
	if _, err := r.client.Collection(colDiscussions).Doc(d.ID).Set(ctx, r.docFor(ctx, existing)); err != nil {
		return domain.DiscussionItem{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *FSDiscussionRepo) SetResolved(ctx context.Context, id string, resolved bool, at time.Time) (domain.DiscussionItem, error) {
	var resolvedAt any
	if resolved {
		resolvedAt = at
	} else {
		resolvedAt = nil
	}
	_, err := r.client.Collection(colDiscussions).Doc(id).Update(ctx, []firestore.Update{
		{Path: "isResolved", Value: resolved},
		{Path: "resolvedAt", Value: resolvedAt},
		{Path: "updatedAt", Value: at},
	})
	if err != nil {
		return domain.DiscussionItem{}, fsNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *FSDiscussionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(colDiscussions).Doc(id).Delete(ctx)
	return err
}

type fsShoppingDoc struct {
	HouseholdID     string     `firestore:"householdId"`
	CreatedByID     string     `firestore:"createdById"`
	ItemName        string     `firestore:"itemName"`
	Quantity        string     `firestore:"quantity"`
	Notes           string     `firestore:"notes"`
	IsPurchased     bool       `firestore:"isPurchased"`
	PurchasedByID   string     `firestore:"purchasedById"`
	PurchasedAt     *time.Time `firestore:"purchasedAt"`
	CreatedAt       time.Time  `firestore:"createdAt"`
	UpdatedAt       time.Time  `firestore:"updatedAt"`
	CreatedByName   string     `firestore:"createdByName"`
	PurchasedByName string     `firestore:"purchasedByName"`
}

func (d fsShoppingDoc) toItem(id string) domain.ShoppingListItem {
	return domain.ShoppingListItem{
		ID: id, HouseholdID: d.HouseholdID, CreatedByID: d.CreatedByID,
		ItemName: d.ItemName, Quantity: d.Quantity, Notes: d.Notes,
		IsPurchased: d.IsPurchased, PurchasedByID: d.PurchasedByID, PurchasedAt: d.PurchasedAt,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		CreatedByName: d.CreatedByName, PurchasedByName: d.PurchasedByName,
	}
}

// FSShoppingRepo implements ShoppingRepo with Firestore.
type FSShoppingRepo struct {
	client *firestore.Client
}

func (r *FSShoppingRepo) userName(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	snap, err := r.client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		return ""
	}
	var u fsUserDoc
	if err := snap.DataTo(&u); err != nil {
		return ""
	}
	return u.Name
}

func (r *FSShoppingRepo) docFor(ctx context.Context, it domain.ShoppingListItem) fsShoppingDoc {
	return fsShoppingDoc{
		HouseholdID: it.HouseholdID, CreatedByID: it.CreatedByID,
		ItemName: it.ItemName, Quantity: it.Quantity, Notes: it.Notes,
		IsPurchased: it.IsPurchased, PurchasedByID: it.PurchasedByID, PurchasedAt: it.PurchasedAt,
		CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt,
		CreatedByName:   r.userName(ctx, it.CreatedByID),
		PurchasedByName: r.userName(ctx, it.PurchasedByID),
	}
}

func (r *FSShoppingRepo) Create(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	if _, err := r.client.Collection(colShopping).Doc(it.ID).Create(ctx, r.docFor(ctx, it)); err != nil {
		return domain.ShoppingListItem{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *FSShoppingRepo) GetByID(ctx context.Context, id string) (domain.ShoppingListItem, error) {
	snap, err := r.client.Collection(colShopping).Doc(id).Get(ctx)
	if err != nil {
		return domain.ShoppingListItem{}, fsNotFound(err)
	}
	var doc fsShoppingDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.ShoppingListItem{}, err
	}
	return doc.toItem(snap.Ref.ID), nil
}

func (r *FSShoppingRepo) List(ctx context.Context, householdID string) ([]domain.ShoppingListItem, error) {
	iter := r.client.Collection(colShopping).Where("householdId", "==", householdID).Documents(ctx)
	defer iter.Stop()
	var list []domain.ShoppingListItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc fsShoppingDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc.toItem(snap.Ref.ID))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *FSShoppingRepo) Update(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	existing, err := r.GetByID(ctx, it.ID)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	existing.ItemName = it.ItemName
	existing.Quantity = it.Quantity
	existing.Notes = it.Notes
	existing.UpdatedAt = it.UpdatedAt
	if _, err := r.client.Collection(colShopping).Doc(it.ID).Set(ctx, r.docFor(ctx, existing)); err != nil {
		return domain.ShoppingListItem{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *FSShoppingRepo) SetPurchased(ctx context.Context, id string, purchased bool, byID string, at time.Time) (domain.ShoppingListItem, error) {
	var purchasedAt any
	purchasedBy := ""
	if purchased {
		purchasedAt = at
		purchasedBy = byID
	} else {
		purchasedAt = nil
	}
	_, err := r.client.Collection(colShopping).Doc(id).Update(ctx, []firestore.Update{
		{Path: "isPurchased", Value: purchased},
		{Path: "purchasedById", Value: purchasedBy},
		{Path: "purchasedByName", Value: r.userName(ctx, purchasedBy)},
		{Path: "purchasedAt", Value: purchasedAt},
		{Path: "updatedAt", Value: at},
	})
	if err != nil {
		return domain.ShoppingListItem{}, fsNotFound(err)
	}
	return r.GetByID(ctx, id)
}

func (r *FSShoppingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(colShopping).Doc(id).Delete(ctx)
	return err
}

type fsSubscriptionDoc struct {
	Endpoint  string    `firestore:"endpoint"`
	P256dh    string    `firestore:"p256dh"`
	Auth      string    `firestore:"auth"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// FSSubscriptionRepo implements SubscriptionRepo with Firestore.
type FSSubscriptionRepo struct {
	client *firestore.Client
}

func (r *FSSubscriptionRepo) Create(ctx context.Context, s domain.PushSubscription) (domain.PushSubscription, error) {
	doc := fsSubscriptionDoc{Endpoint: s.Endpoint, P256dh: s.P256dh, Auth: s.Auth, CreatedAt: s.CreatedAt}
	if _, err := r.client.Collection(colSubscriptions).Doc(s.ID).Create(ctx, doc); err != nil {
		return domain.PushSubscription{}, err
	}
	return s, nil
}

func (r *FSSubscriptionRepo) List(ctx context.Context) ([]domain.PushSubscription, error) {
	iter := r.client.Collection(colSubscriptions).Documents(ctx)
	defer iter.Stop()
	var list []domain.PushSubscription
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc fsSubscriptionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		list = append(list, domain.PushSubscription{
			ID: snap.Ref.ID, Endpoint: doc.Endpoint, P256dh: doc.P256dh, Auth: doc.Auth,
			CreatedAt: doc.CreatedAt,
		})
	}
	return list, nil
}
