// Command seed loads a small demo household into the flat-file store:
// two members, a few domains, and tasks spread across today, tomorrow,
// and the recent past.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/repo"
	"github.com/clairecicle/Mental-load-app/internal/schedule"
)

func main() {
	path := flag.String("db", "data/db.json", "path to the JSON database file")
	password := flag.String("password", "password123", "password for the demo accounts")
	flag.Parse()

	if dir := filepath.Dir(*path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create data dir: %v", err)
		}
	}
	store := repo.NewFileStore(*path).Repos()
	ctx := context.Background()
	now := time.Now().UTC()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	hh, err := store.Households.Create(ctx, domain.Household{
		ID: uuid.NewString(), Name: "The Demo Household", CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		log.Fatalf("create household: %v", err)
	}

	newUser := func(email, name string) domain.User {
		u, err := store.Users.Create(ctx, domain.User{
			ID: uuid.NewString(), Email: email, Name: name,
			PasswordHash: string(hash), HouseholdID: hh.ID, Role: "member",
			CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			log.Fatalf("create user %s: %v", email, err)
		}
		return u
	}
	alice := newUser("alice@example.com", "Alice")
	bob := newUser("bob@example.com", "Bob")

	newDomain := func(owner domain.User, name string) domain.Domain {
		d, err := store.Domains.Create(ctx, domain.Domain{
			ID: uuid.NewString(), HouseholdID: hh.ID, OwnerID: owner.ID,
			Name: name, CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			log.Fatalf("create domain %s: %v", name, err)
		}
		return d
	}
	kitchen := newDomain(alice, "Kitchen & Meals")
	kids := newDomain(bob, "Kids & School")
	household := newDomain(alice, "Household Admin")

	today := now.Local().Format(schedule.DateLayout)
	tomorrow := now.Local().AddDate(0, 0, 1).Format(schedule.DateLayout)
	yesterday := now.Local().AddDate(0, 0, -1).Format(schedule.DateLayout)

	newTask := func(owner domain.User, d domain.Domain, title, dueDate, dueTime, freq string) {
		_, err := store.Tasks.Create(ctx, domain.Task{
			ID: uuid.NewString(), HouseholdID: hh.ID, DomainID: d.ID, OwnerID: owner.ID,
			Title: title, DueDate: dueDate, DueTime: dueTime,
			FrequencyType: freq, CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			log.Fatalf("create task %s: %v", title, err)
		}
	}
	newTask(alice, kitchen, "Plan dinner menu", today, "09:00", "daily")
	newTask(bob, kitchen, "Empty dishwasher", today, "18:30", "daily")
	newTask(bob, kids, "Pack school lunches", tomorrow, "07:15", "daily")
	newTask(alice, kids, "Sign permission slip", yesterday, "", "")
	newTask(alice, household, "Pay utility bill", tomorrow, "", "monthly")
	newTask(bob, household, "Sort the mail", today, "", "")

	if _, err := store.Discussions.Create(ctx, domain.DiscussionItem{
		ID: uuid.NewString(), HouseholdID: hh.ID, CreatedByID: alice.ID,
		Title: "Summer vacation dates", Details: "Compare the last two weeks of July vs early August.",
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		log.Fatalf("create discussion: %v", err)
	}

	if _, err := store.Shopping.Create(ctx, domain.ShoppingListItem{
		ID: uuid.NewString(), HouseholdID: hh.ID, CreatedByID: bob.ID,
		ItemName: "Milk", Quantity: "2", CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		log.Fatalf("create shopping item: %v", err)
	}

	log.Printf("seeded household %s with members alice@example.com and bob@example.com (password %q)", hh.ID, *password)
}
