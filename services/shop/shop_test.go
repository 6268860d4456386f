package shop

import (
	"testing"

	shopRepo "laundrify/database/repository/shop"
	"laundrify/models"
	"laundrify/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeShopRepo stores shops in memory and records the last list filter.
type fakeShopRepo struct {
	shops      map[string]*models.Shop
	lastFilter shopRepo.ShopListFilter
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[string]*models.Shop)}
}

func (f *fakeShopRepo) Create(shop *models.Shop) error {
	cp := *shop
	f.shops[shop.ID] = &cp
	return nil
}

func (f *fakeShopRepo) GetByID(id string) (*models.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShopRepo) List(filter shopRepo.ShopListFilter) ([]models.Shop, int64, error) {
	f.lastFilter = filter
	var out []models.Shop
	for _, s := range f.shops {
		if filter.ActiveOnly && !s.IsActive {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeShopRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	s, ok := f.shops[id]
	if !ok {
		return nil
	}
	if v, ok := updateDoc["name"].(string); ok {
		s.Name = v
	}
	if v, ok := updateDoc["isActive"].(bool); ok {
		s.IsActive = v
	}
	return nil
}

func (f *fakeShopRepo) Deactivate(id string) error {
	if s, ok := f.shops[id]; ok {
		s.IsActive = false
	}
	return nil
}

func (f *fakeShopRepo) ReplaceReviews(shopID string, version int64, reviews []models.Review, ratings []int) error {
	return nil
}

func (f *fakeShopRepo) AddMenuItem(shopID string, item models.MenuItem) error {
	f.shops[shopID].Menu = append(f.shops[shopID].Menu, item)
	return nil
}

func (f *fakeShopRepo) UpdateMenuItem(shopID string, item models.MenuItem) error {
	for i, m := range f.shops[shopID].Menu {
		if m.ID == item.ID {
			f.shops[shopID].Menu[i] = item
		}
	}
	return nil
}

func (f *fakeShopRepo) RemoveMenuItem(shopID, itemID string) error {
	menu := f.shops[shopID].Menu
	out := menu[:0]
	for _, m := range menu {
		if m.ID != itemID {
			out = append(out, m)
		}
	}
	f.shops[shopID].Menu = out
	return nil
}

func validShopInput() CreateShopInput {
	return CreateShopInput{
		Name: "Fresh Spin",
		Location: models.Location{
			Address: "12 River Road",
		},
		Menu: []MenuItemInput{
			{Name: "Shirt wash", Price: 3.5, Category: "Washing"},
		},
	}
}

func TestCreateShop(t *testing.T) {
	repo := newFakeShopRepo()
	svc := &DefaultShopService{Repo: repo}

	sh, err := svc.Create("admin-1", validShopInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !sh.IsActive {
		t.Fatal("new shop must start active")
	}
	if sh.Location.Coordinates.Type != "Point" {
		t.Fatalf("coordinates type = %q, want Point", sh.Location.Coordinates.Type)
	}
	if len(sh.Menu) != 1 || sh.Menu[0].ID == "" {
		t.Fatalf("menu not built: %+v", sh.Menu)
	}
	if sh.Ratings == nil || sh.Reviews == nil {
		t.Fatal("rating arrays must initialize empty, not nil")
	}
}

func TestCreateShopValidation(t *testing.T) {
	svc := &DefaultShopService{Repo: newFakeShopRepo()}

	tests := []struct {
		name   string
		mutate func(*CreateShopInput)
	}{
		{name: "missing name", mutate: func(in *CreateShopInput) { in.Name = "" }},
		{name: "missing address", mutate: func(in *CreateShopInput) { in.Location.Address = "" }},
		{name: "empty menu", mutate: func(in *CreateShopInput) { in.Menu = nil }},
		{name: "free item", mutate: func(in *CreateShopInput) { in.Menu[0].Price = 0 }},
		{name: "bad category", mutate: func(in *CreateShopInput) { in.Menu[0].Category = "Cooking" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validShopInput()
			tc.mutate(&in)
			if _, err := svc.Create("admin-1", in); !utils.HasCode(err, utils.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestListShops(t *testing.T) {
	repo := newFakeShopRepo()
	svc := &DefaultShopService{Repo: repo}
	if _, err := svc.Create("admin-1", validShopInput()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := svc.List(ListShopsQuery{Category: "Cooking"}); !utils.HasCode(err, utils.CodeValidation) {
		t.Fatalf("expected validation error for bad category, got %v", err)
	}

	page, err := svc.List(ListShopsQuery{Category: "Washing", Page: -3, Limit: 0})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("paging not defaulted: page=%d limit=%d", page.Page, page.Limit)
	}
	if !repo.lastFilter.ActiveOnly {
		t.Fatal("public listing must filter to active shops")
	}
	if page.Total != 1 || page.Pages != 1 {
		t.Fatalf("totals wrong: %+v", page)
	}
}

func TestDeactivateHidesShop(t *testing.T) {
	repo := newFakeShopRepo()
	svc := &DefaultShopService{Repo: repo}
	sh, err := svc.Create("admin-1", validShopInput())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := svc.Deactivate(sh.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	page, err := svc.List(ListShopsQuery{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Shops) != 0 {
		t.Fatalf("deactivated shop still listed: %+v", page.Shops)
	}

	// Detail and history lookups still work.
	v, err := svc.Get(sh.ID)
	if err != nil || v == nil {
		t.Fatalf("Get after deactivate failed: %v", err)
	}

	if err := svc.Deactivate("missing"); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMenuItemLifecycle(t *testing.T) {
	repo := newFakeShopRepo()
	svc := &DefaultShopService{Repo: repo}
	sh, err := svc.Create("admin-1", validShopInput())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	item, err := svc.AddMenuItem(sh.ID, MenuItemInput{Name: "Suit press", Price: 9, Category: "Ironing"})
	if err != nil {
		t.Fatalf("AddMenuItem failed: %v", err)
	}

	updated, err := svc.UpdateMenuItem(sh.ID, item.ID, MenuItemInput{Name: "Suit press deluxe", Price: 12, Category: "Ironing"})
	if err != nil {
		t.Fatalf("UpdateMenuItem failed: %v", err)
	}
	if updated.ID != item.ID || updated.Price != 12 {
		t.Fatalf("item not updated in place: %+v", updated)
	}

	if _, err := svc.UpdateMenuItem(sh.ID, "missing", MenuItemInput{Name: "x", Price: 1, Category: "Washing"}); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := svc.RemoveMenuItem(sh.ID, item.ID); err != nil {
		t.Fatalf("RemoveMenuItem failed: %v", err)
	}
	menu, err := svc.Menu(sh.ID)
	if err != nil {
		t.Fatalf("Menu failed: %v", err)
	}
	if len(menu) != 1 {
		t.Fatalf("expected one remaining item, got %d", len(menu))
	}
	if err := svc.RemoveMenuItem(sh.ID, item.ID); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found on second removal, got %v", err)
	}
}
