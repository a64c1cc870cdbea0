package settings

import "encoding/json"

// Groups maps a group name to an ordered list of folder names. The data is
// owned by the UI layer; the core only touches it to drop folders that no
// longer exist.
type Groups map[string][]string

// LoadGroups reads the groups key. A missing key yields an empty map.
func LoadGroups(s Store) (Groups, error) {
	raw, ok, err := s.Get(KeyGroups)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return Groups{}, nil
	}

	var g Groups
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	if g == nil {
		g = Groups{}
	}
	return g, nil
}

// SaveGroups writes the groups key.
func SaveGroups(s Store, g Groups) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return s.Set(KeyGroups, string(data))
}

// RemoveFolder drops the folder name from every group and reports whether
// anything changed.
func (g Groups) RemoveFolder(name string) bool {
	changed := false
	for group, folders := range g {
		kept := folders[:0]
		for _, f := range folders {
			if f == name {
				changed = true
				continue
			}
			kept = append(kept, f)
		}
		g[group] = kept
	}
	return changed
}
