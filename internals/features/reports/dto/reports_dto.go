package dto

import (
	"time"

	"github.com/google/uuid"
)

// 🔹 GET /api/stats/:userId — resumo do dashboard pessoal
type UserStatsResponse struct {
	TotalOpportunities int64   `json:"totalOpportunities"`
	TotalVolunteers    int64   `json:"totalVolunteers"`
	MyHours            float64 `json:"myHours"`
	Completed          int     `json:"completed"`
	Upcoming           int     `json:"upcoming"`
}

// 🔹 GET /api/impact-global
type ImpactTotals struct {
	TotalHours             float64 `json:"totalHours"`
	TotalVolunteers        int     `json:"totalVolunteers"`
	CompletedOpportunities int     `json:"completedOpportunities"`
	TotalOpportunities     int     `json:"totalOpportunities"`
}

type MonthBucket struct {
	Month      string  `json:"month"`
	Volunteers int     `json:"volunteers"`
	Hours      float64 `json:"hours"`
}

type TopVolunteer struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type GeographyMix struct {
	Online int            `json:"online"`
	Cities map[string]int `json:"cities"`
}

type GlobalImpactResponse struct {
	Totals        ImpactTotals   `json:"totals"`
	MonthlyTrend  []MonthBucket  `json:"monthlyTrend"`
	TopVolunteers []TopVolunteer `json:"topVolunteers"`
	Geography     GeographyMix   `json:"geography"`
	Categories    map[string]int `json:"categories"`
}

// 🔹 GET /api/profile/:userId — perfil + retrospectiva anual
type HistoryEntry struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	Institution string    `json:"institution"`
}

type Retrospective struct {
	Year          int     `json:"year"`
	Activities    int     `json:"activities"`
	Hours         float64 `json:"hours"`
	FavoriteCause string  `json:"favoriteCause"`
}

type ProfileUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	User          ProfileUser    `json:"user"`
	Completed     int            `json:"completed"`
	Upcoming      int            `json:"upcoming"`
	TotalHours    float64        `json:"totalHours"`
	Retrospective Retrospective  `json:"retrospective"`
	History       []HistoryEntry `json:"history"`
}
