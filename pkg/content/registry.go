// Package content - статические шаблоны врагов, встреч и предметов.
//
// Таблицы адресуются строковыми ID (так их ссылают сохранения и квесты),
// но доступ идёт только через Lookup*, который сообщает, найден ли ключ.
package content

// Registry объединяет все таблицы шаблонов.
type Registry struct {
	Enemies    map[string]EnemyTemplate
	Encounters map[string]EncounterTemplate
	Items      map[string]ItemTemplate
}

// Default - встроенный контент.
var Default = Registry{
	Enemies:    EnemyTemplates,
	Encounters: EncounterTemplates,
	Items:      ItemTemplates,
}

func (r Registry) LookupEnemy(id string) (EnemyTemplate, bool) {
	t, ok := r.Enemies[id]
	return t, ok
}

func (r Registry) LookupEncounter(id string) (EncounterTemplate, bool) {
	t, ok := r.Encounters[id]
	return t, ok
}

func (r Registry) LookupItem(id string) (ItemTemplate, bool) {
	t, ok := r.Items[id]
	return t, ok
}
