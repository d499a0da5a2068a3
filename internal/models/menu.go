package models

// MenuItem is one purchasable entry of the static menu.
type MenuItem struct {
	Name      string  `json:"name" mapstructure:"name"`
	UnitPrice float64 `json:"unit_price" mapstructure:"price"`
}

// DefaultMenu returns the built-in menu in display order.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Name: "Pizza", UnitPrice: 8.50},
		{Name: "Burger", UnitPrice: 5.00},
		{Name: "Pasta", UnitPrice: 6.75},
		{Name: "Sandwich", UnitPrice: 4.25},
		{Name: "Salad", UnitPrice: 3.50},
		{Name: "Juice", UnitPrice: 2.00},
		{Name: "Coffee", UnitPrice: 1.50},
		{Name: "Tea", UnitPrice: 1.00},
		{Name: "Ice Cream", UnitPrice: 2.50},
	}
}

// Menu is an ordered, read-only list of menu items.
type Menu struct {
	items []MenuItem
}

// NewMenu copies items so later mutation of the slice cannot alter the menu.
func NewMenu(items []MenuItem) *Menu {
	cp := make([]MenuItem, len(items))
	copy(cp, items)
	return &Menu{items: cp}
}

// Items returns a copy of the menu items in definition order.
func (m *Menu) Items() []MenuItem {
	cp := make([]MenuItem, len(m.items))
	copy(cp, m.items)
	return cp
}

// Len returns the number of items.
func (m *Menu) Len() int { return len(m.items) }

// Lookup finds an item by exact name.
func (m *Menu) Lookup(name string) (MenuItem, bool) {
	for _, it := range m.items {
		if it.Name == name {
			return it, true
		}
	}
	return MenuItem{}, false
}
