package domain

import "neotokyo-core/internal/core/types/enums"

// DistrictProfile - тема и описание района (статический контент).
type DistrictProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Theme       string `json:"theme"` // ключ таблиц грамматики: "slums", "corporate"...
	Description string `json:"description"`
}

// District - район, сгенерированный из мастер-сида.
// Seed всегда "{masterSeed}_d{index}".
type District struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Seed      string          `json:"seed"`
	Stratum   enums.Stratum   `json:"stratum"`
	Elevation float64         `json:"elevation"`
	Profile   DistrictProfile `json:"profile"`
}
