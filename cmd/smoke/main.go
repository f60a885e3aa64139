// Command smoke drives the full client surface against a running server:
// sign up, sign in, then a complete add/list/update/delete cycle through the
// state containers. It exits non-zero on the first divergence.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rl1809/stockroom/client"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	baseURL := os.Getenv("STOCKROOM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slotPath := filepath.Join(os.TempDir(), "stockroom-smoke-identity.json")
	defer os.Remove(slotPath)

	gateway := client.NewGateway(baseURL)
	users := client.NewUserStore(gateway, client.NewFileSlot(slotPath), nil)
	inventory := client.NewInventoryStore(gateway, users)

	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())

	if res := users.SignUp(ctx, "Smoke Tester", email, "hunter2"); res == nil {
		log.Fatal("sign-up failed")
	}
	log.Println("signed up")

	if res := users.SignIn(ctx, email, "hunter2"); res == nil {
		log.Fatal("sign-in failed")
	}
	log.Printf("signed in as %s", users.Current().Email)

	if err := inventory.AddItem(ctx, client.ItemInput{Name: "Widget", Quantity: 5, Price: 10}); err != nil {
		log.Fatalf("add failed: %v", err)
	}

	items := inventory.Items()
	if len(items) == 0 {
		log.Fatal("expected at least one item after add")
	}
	added := items[len(items)-1]
	log.Printf("added item %s", added.ID)

	if err := inventory.FetchAll(ctx); err != nil {
		log.Fatalf("fetch failed: %v", err)
	}
	log.Printf("fetched %d items", len(inventory.Items()))

	if err := inventory.UpdateItem(ctx, added.ID, client.ItemInput{Name: "Widget v2", Quantity: 7, Price: 12.5}); err != nil {
		log.Fatalf("update failed: %v", err)
	}

	fetched, err := inventory.FetchItemByID(ctx, added.ID)
	if err != nil {
		log.Fatalf("fetch by id failed: %v", err)
	}
	if fetched.Name != "Widget v2" || fetched.Quantity != 7 {
		log.Fatalf("update not visible on server: %+v", fetched)
	}

	if err := inventory.DeleteItem(ctx, added.ID); err != nil {
		log.Fatalf("delete failed: %v", err)
	}
	if _, err := inventory.FetchItemByID(ctx, added.ID); err == nil {
		log.Fatal("expected fetch of deleted item to fail")
	}

	users.ClearUser()
	if users.Current() != nil {
		log.Fatal("expected signed-out state after clear")
	}

	log.Println("smoke test passed")
}
