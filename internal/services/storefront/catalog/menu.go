package catalog

// NavCategory is one entry of the category filter bar.
type NavCategory struct {
	Slug  string
	Label string
}

// NavCategories lists the filter bar entries in display order.
func NavCategories() []NavCategory {
	return []NavCategory{
		{Slug: AllCategories, Label: "All"},
		{Slug: "coffee-machines", Label: "Coffee Machines"},
		{Slug: "lcd-screens", Label: "LCD Screens"},
		{Slug: "ice-machines", Label: "ICE Machines"},
		{Slug: "accessories", Label: "Accessories"},
		{Slug: "dining-room", Label: "Dining Room"},
		{Slug: "powders", Label: "Powders"},
	}
}

// SearchCategories lists the header search scope options.
func SearchCategories() []NavCategory {
	return NavCategories()[:5]
}

// MenuGroup is one titled column of a mega-menu panel.
type MenuGroup struct {
	Title string
	Items []string
}

// MenuItem is one top-level entry of the CATEGORIES dropdown.
type MenuItem struct {
	Name    string
	Icon    string
	Special bool
	Groups  []MenuGroup
}

// HasPanel reports whether hovering the item opens a mega-menu panel.
func (m MenuItem) HasPanel() bool {
	return len(m.Groups) > 0
}

// MegaMenu returns the header CATEGORIES tree.
func MegaMenu() []MenuItem {
	return []MenuItem{
		{
			Name: "collectibles",
			Icon: "cube",
			Groups: []MenuGroup{
				{Title: "antiques", Items: []string{"Lighter"}},
			},
		},
		{
			Name: "Furniture",
			Icon: "cube",
			Groups: []MenuGroup{
				{Title: "Sofa & Seating", Items: []string{
					"Chaise & Benches", "Armchairs", "Recliners", "Corner Sofas",
					"Sofas & Sofa Sets", "Ottomans, Bean Bags & Poufs", "Sofa Beds & Day Beds", "Tea Table Sets",
				}},
				{Title: "Living Room", Items: []string{
					"Room Dividers & Screens", "Game Room Furniture", "Shelves and Shelving units", "Shoe Racks",
					"TV & Media Units", "Nest of Tables", "Side & End Tables", "Coffee Tables",
				}},
				{Title: "Bed Rooms", Items: []string{
					"Wardrobes", "Storage Safes", "Benches", "Chest of Drawers",
					"Night Stands", "Dressers & Mirrors", "Bed Sets",
				}},
				{Title: "Dining Room", Items: []string{
					"Furniture", "Kitchen Islands", "Serving Trolleys", "Buffet, Hutches & Curios",
					"Chairs & Benches", "Dining Tables", "Dining Sets",
				}},
				{Title: "Office", Items: []string{
					"Bookcases, Dividers and Storage", "Office Chairs", "Office Desks",
				}},
				{Title: "Modular", Items: []string{
					"Gifts", "Modular Beds and wardrobes", "Modular Sofas",
				}},
			},
		},
		{
			Name: "Bubble Tea",
			Icon: "cube",
			Groups: []MenuGroup{
				{Title: "Bubble Tea Products", Items: []string{
					"Tea Leaves", "Tapioca", "Dessert Mix", "Trending", "Jelly",
					"Popping Boba", "Syrups", "Flavour Powder", "Sweetner", "Creamer",
					"Lids", "Cups", "Sealing Film", "Straws", "Plastic Bags",
					"Kitchen Tools/Utensils", "Sealing Machine", "Blenders And Jars", "Others",
				}},
			},
		},
		{
			Name: "Paintings",
			Icon: "cube",
			Groups: []MenuGroup{
				{Title: "Paintings 50x60", Items: []string{"Hand Made 50x60"}},
				{Title: "Paintings 60x90", Items: []string{"Hand Made 60x90"}},
				{Title: "Paintings 90x120", Items: []string{"Hand Made 90x120"}},
			},
		},
		{Name: "Men's Fashion", Icon: "cube"},
		{Name: "TOYS", Icon: "cube"},
		{Name: "New Arrival", Icon: "new", Special: true},
		{Name: "Fishing Equipment", Icon: "cube"},
		{
			Name: "pet",
			Icon: "cube",
			Groups: []MenuGroup{
				{Title: "dogs", Items: []string{"Dogs"}},
				{Title: "cats", Items: []string{"cats"}},
			},
		},
	}
}
