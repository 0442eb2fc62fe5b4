package world

import "neotokyo-core/internal/domain"

// Profiles - все районы, из которых собирается мир.
// Порядок важен: индекс профиля участвует в перемешивании.
var Profiles = []domain.DistrictProfile{
	{
		ID:          "shibuya_underpass",
		Name:        "Shibuya Underpass",
		Theme:       "slums",
		Description: "Затопленные переходы под старой развязкой, где живут те, кого забыли корпорации.",
	},
	{
		ID:          "akihabara_stacks",
		Name:        "Akihabara Stacks",
		Theme:       "market",
		Description: "Этажи барахолок и ремонтных лавок, сложенные друг на друга.",
	},
	{
		ID:          "kurenai_campus",
		Name:        "Kurenai Campus",
		Theme:       "academy",
		Description: "Алая академия: тренировочные залы и крыши, где решаются споры.",
	},
	{
		ID:          "azure_spire",
		Name:        "Azure Spire",
		Theme:       "academy",
		Description: "Стеклянная башня лазурной академии над облачным слоем.",
	},
	{
		ID:          "shinjuku_core",
		Name:        "Shinjuku Core",
		Theme:       "corporate",
		Description: "Небоскрёбы корпораций и охраняемые воздушные мосты.",
	},
	{
		ID:          "odaiba_docks",
		Name:        "Odaiba Docks",
		Theme:       "harbor",
		Description: "Контейнерные терминалы и насыпные острова.",
	},
	{
		ID:          "kabukicho_lights",
		Name:        "Kabukicho Lights",
		Theme:       "entertainment",
		Description: "Неон, игровые залы и подпольные арены.",
	},
	{
		ID:          "koto_foundry",
		Name:        "Koto Foundry",
		Theme:       "industrial",
		Description: "Литейные цеха и автоматические сборочные линии.",
	},
	{
		ID:          "meiji_grove",
		Name:        "Meiji Grove",
		Theme:       "shrine",
		Description: "Последний лес города вокруг старого святилища.",
	},
	{
		ID:          "sumida_drain",
		Name:        "Sumida Drain",
		Theme:       "slums",
		Description: "Дренажные тоннели у реки, переделанные под жильё.",
	},
}
