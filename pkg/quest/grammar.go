package quest

import (
	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/pkg/rng"
)

// DefaultTheme - таблицы, на которые падает неизвестная тема района.
const DefaultTheme = "slums"

// ThemeTables - словарь, зависящий от темы района.
type ThemeTables struct {
	Adjectives []rng.GrammarEntry
	Landmarks  []rng.GrammarEntry
}

// Grammar - полный набор таблиц генератора квестов.
type Grammar struct {
	Nouns    []rng.GrammarEntry
	Verbs    []rng.GrammarEntry
	Outcomes []rng.GrammarEntry
	Contacts []rng.GrammarEntry
	Themes   map[string]ThemeTables

	// Descriptions - шаблоны описаний. Плейсхолдеры: {contact} {noun} {landmark} {outcome} {district}
	Descriptions []string
}

// Theme возвращает таблицы темы и признак того, что тема известна.
func (g Grammar) Theme(theme string) (ThemeTables, bool) {
	t, ok := g.Themes[theme]
	if !ok {
		return g.Themes[DefaultTheme], false
	}
	return t, true
}

func e(value string, weight float64) rng.GrammarEntry {
	return rng.GrammarEntry{Value: value, Weight: weight}
}

func biased(value string, weight float64, f enums.Faction) rng.GrammarEntry {
	return rng.GrammarEntry{Value: value, Weight: weight, AlignmentBias: f}
}

// DefaultGrammar - таблицы Нео-Токио.
var DefaultGrammar = Grammar{
	Nouns: []rng.GrammarEntry{
		e("data core", 3),
		e("prototype", 2),
		e("courier", 3),
		e("signal", 2),
		e("ledger", 2),
		e("drone", 3),
		e("relic", 1),
		e("keycard", 2),
	},
	Verbs: []rng.GrammarEntry{
		e("recover", 4),
		e("escort", 2),
		biased("protect", 3, enums.FactionKurenai),
		biased("expose", 2, enums.FactionAzure),
		biased("sabotage", 2, enums.FactionSyndicate),
		biased("deliver", 3, enums.FactionRunners),
		e("investigate", 3),
	},
	Outcomes: []rng.GrammarEntry{
		e("the streets will remember who helped", 3),
		e("someone powerful will not be pleased", 2),
		e("the rival academy is watching", 2),
		e("the price on your head may rise", 1),
	},
	Contacts: []rng.GrammarEntry{
		e("a retired fixer", 3),
		e("a nervous first-year", 2),
		e("an anonymous broker", 2),
		e("the student council", 1),
	},
	Themes: map[string]ThemeTables{
		"slums": {
			Adjectives: []rng.GrammarEntry{e("rusted", 3), e("flooded", 2), e("stolen", 2), e("forgotten", 1)},
			Landmarks:  []rng.GrammarEntry{e("the collapsed overpass", 2), e("the pump station", 2), e("the night market stalls", 1)},
		},
		"market": {
			Adjectives: []rng.GrammarEntry{e("counterfeit", 3), e("overclocked", 2), e("second-hand", 2)},
			Landmarks:  []rng.GrammarEntry{e("the parts bazaar", 3), e("the arcade basement", 2), e("the repair stacks", 1)},
		},
		"academy": {
			Adjectives: []rng.GrammarEntry{e("forbidden", 2), e("decorated", 2), e("confidential", 3)},
			Landmarks:  []rng.GrammarEntry{e("the training dojo", 3), e("the rooftop garden", 2), e("the archive wing", 2)},
		},
		"corporate": {
			Adjectives: []rng.GrammarEntry{e("encrypted", 3), e("classified", 2), e("gilded", 1)},
			Landmarks:  []rng.GrammarEntry{e("the sky bridge", 2), e("the server vault", 3), e("the executive lounge", 1)},
		},
		"harbor": {
			Adjectives: []rng.GrammarEntry{e("smuggled", 3), e("salt-stained", 2), e("unregistered", 2)},
			Landmarks:  []rng.GrammarEntry{e("the container yard", 3), e("the ferry terminal", 2), e("the crane gantry", 1)},
		},
		"entertainment": {
			Adjectives: []rng.GrammarEntry{e("neon", 3), e("rigged", 2), e("legendary", 1)},
			Landmarks:  []rng.GrammarEntry{e("the pachinko hall", 2), e("the underground arena", 3), e("the karaoke tower", 1)},
		},
		"industrial": {
			Adjectives: []rng.GrammarEntry{e("molten", 2), e("automated", 3), e("scrapped", 2)},
			Landmarks:  []rng.GrammarEntry{e("the foundry floor", 3), e("the assembly line", 2), e("the cooling towers", 1)},
		},
		"shrine": {
			Adjectives: []rng.GrammarEntry{e("sacred", 3), e("cursed", 1), e("ancient", 2)},
			Landmarks:  []rng.GrammarEntry{e("the torii path", 3), e("the moss garden", 2), e("the hidden well", 1)},
		},
	},
	Descriptions: []string{
		"{contact} needs the {noun} back before dawn. Last seen near {landmark}. They say {outcome}.",
		"Word from {district}: the {noun} was moved to {landmark}. Get there first - {outcome}.",
		"{contact} is paying well for the {noun}. Nobody asks questions in {district}, but {outcome}.",
		"Rumors about the {noun} keep pointing to {landmark}. If it is true, {outcome}.",
	},
}
