package content

// EncounterEntry - сколько врагов шаблона вывести во встречу.
type EncounterEntry struct {
	TemplateID string
	Count      int
}

// EncounterTemplate - состав встречи.
type EncounterTemplate struct {
	ID      string
	Name    string
	Enemies []EncounterEntry
}

// EncounterTemplates - карта всех встреч
var EncounterTemplates = map[string]EncounterTemplate{
	"alley_ambush": {
		ID:   "alley_ambush",
		Name: "Alley Ambush",
		Enemies: []EncounterEntry{
			{TemplateID: "street_punk", Count: 3},
		},
	},
	"corporate_patrol": {
		ID:   "corporate_patrol",
		Name: "Corporate Patrol",
		Enemies: []EncounterEntry{
			{TemplateID: "security_drone", Count: 2},
			{TemplateID: "syndicate_bruiser", Count: 1},
		},
	},
	"discipline_committee": {
		ID:   "discipline_committee",
		Name: "Discipline Committee",
		Enemies: []EncounterEntry{
			{TemplateID: "academy_enforcer", Count: 2},
		},
	},
	"rooftop_duel": {
		ID:   "rooftop_duel",
		Name: "Rooftop Duel",
		Enemies: []EncounterEntry{
			{TemplateID: "rival_captain", Count: 1},
		},
	},
	"foundry_guardian": {
		ID:   "foundry_guardian",
		Name: "Foundry Guardian",
		Enemies: []EncounterEntry{
			{TemplateID: "mech_warden", Count: 1},
			{TemplateID: "security_drone", Count: 2},
		},
	},
}
