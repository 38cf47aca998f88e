package pricing

type GroupName string

const (
	GroupEquipment GroupName = "equipment"
	GroupStudios   GroupName = "studios"
	GroupStaff     GroupName = "staff"
)

func (g GroupName) String() string {
	return string(g)
}

func (g GroupName) IsValid() bool {
	switch g {
	case GroupEquipment, GroupStudios, GroupStaff:
		return true
	default:
		return false
	}
}

// Staff assignments are listed on a booking but carry no rate.
func (g GroupName) IsPriced() bool {
	return g == GroupEquipment || g == GroupStudios
}

func ParseGroupName(s string) (GroupName, error) {
	g := GroupName(s)
	if !g.IsValid() {
		return "", ErrUnknownGroup
	}
	return g, nil
}

// PricedGroups is the display order of subtotals.
var PricedGroups = []GroupName{GroupEquipment, GroupStudios}
