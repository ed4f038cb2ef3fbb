package roster

import "github.com/google/uuid"

// SelectionMode задаёт, как выбирается экипаж: автоматически из пула
// или вручную по списку id. Нулевое значение — автоматический режим.
type SelectionMode struct {
	ids []uuid.UUID
}

func Automatic() SelectionMode { return SelectionMode{} }

// Manual с пустым списком эквивалентен Automatic.
func Manual(ids ...uuid.UUID) SelectionMode {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return SelectionMode{}
	}
	return SelectionMode{ids: out}
}

func (m SelectionMode) IsManual() bool { return len(m.ids) > 0 }

func (m SelectionMode) IDs() []uuid.UUID {
	return append([]uuid.UUID(nil), m.ids...)
}

func (m SelectionMode) String() string {
	if m.IsManual() {
		return "manual"
	}
	return "automatic"
}

// missingIDs возвращает запрошенные id, для которых ничего не нашлось.
func missingIDs(want []uuid.UUID, found map[uuid.UUID]bool) []string {
	var out []string
	for _, id := range want {
		if !found[id] {
			out = append(out, id.String())
		}
	}
	return out
}
