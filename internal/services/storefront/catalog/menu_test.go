package catalog

import "testing"

func TestMegaMenu(t *testing.T) {
	t.Parallel()

	menu := MegaMenu()
	if len(menu) != 9 {
		t.Fatalf("menu items = %d, want 9", len(menu))
	}
	specials := 0
	for _, item := range menu {
		if item.Special {
			specials++
			if item.Name != "New Arrival" || item.HasPanel() {
				t.Fatalf("unexpected special item %+v", item)
			}
		}
		for _, group := range item.Groups {
			if group.Title == "" || len(group.Items) == 0 {
				t.Fatalf("item %q has empty group %+v", item.Name, group)
			}
		}
	}
	if specials != 1 {
		t.Fatalf("special items = %d, want 1", specials)
	}
	if furniture := menu[1]; furniture.Name != "Furniture" || len(furniture.Groups) != 6 {
		t.Fatalf("furniture = %+v", furniture)
	}
}

func TestNavCategories(t *testing.T) {
	t.Parallel()

	nav := NavCategories()
	if nav[0].Slug != AllCategories || len(nav) != 7 {
		t.Fatalf("NavCategories() = %+v", nav)
	}
	if search := SearchCategories(); len(search) != 5 || search[4].Slug != "accessories" {
		t.Fatalf("SearchCategories() = %+v", search)
	}
}
