package enums

// ItemCategory — грубая группа классов предметов (tval) для клиентов.
type ItemCategory uint8

const (
	ItemCategoryUnknown ItemCategory = iota
	ItemCategoryWeapon
	ItemCategoryAmmo
	ItemCategoryArmor
	ItemCategoryJewelry
	ItemCategoryLight
	ItemCategoryDevice
	ItemCategoryScroll
	ItemCategoryPotion
	ItemCategoryBook
	ItemCategoryFood
	ItemCategoryContainer
	ItemCategoryGold
	ItemCategoryMisc
)

var itemCategoryNames = [...]string{
	ItemCategoryUnknown:   "UNKNOWN",
	ItemCategoryWeapon:    "WEAPON",
	ItemCategoryAmmo:      "AMMO",
	ItemCategoryArmor:     "ARMOR",
	ItemCategoryJewelry:   "JEWELRY",
	ItemCategoryLight:     "LIGHT",
	ItemCategoryDevice:    "DEVICE",
	ItemCategoryScroll:    "SCROLL",
	ItemCategoryPotion:    "POTION",
	ItemCategoryBook:      "BOOK",
	ItemCategoryFood:      "FOOD",
	ItemCategoryContainer: "CONTAINER",
	ItemCategoryGold:      "GOLD",
	ItemCategoryMisc:      "MISC",
}

func (c ItemCategory) String() string {
	if int(c) < len(itemCategoryNames) {
		return itemCategoryNames[c]
	}
	return "UNKNOWN"
}
