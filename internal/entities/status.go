package entities

import (
	"encoding/json"
	"fmt"
)

// EquipmentStatus is stored as its integer value and serialized over the
// wire as its name.
type EquipmentStatus int

const (
	StatusAvailable EquipmentStatus = iota
	StatusScheduled
	StatusInUse
	StatusMaintenance
	StatusRetired
)

var statusNames = map[EquipmentStatus]string{
	StatusAvailable:   "Available",
	StatusScheduled:   "Scheduled",
	StatusInUse:       "InUse",
	StatusMaintenance: "Maintenance",
	StatusRetired:     "Retired",
}

func (s EquipmentStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("EquipmentStatus(%d)", int(s))
}

func (s EquipmentStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func ParseEquipmentStatus(name string) (EquipmentStatus, error) {
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown equipment status %q", name)
}

func (s EquipmentStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid equipment status %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *EquipmentStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseEquipmentStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
