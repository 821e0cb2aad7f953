package service

import (
	"sort"
	"strings"
	"time"

	"voluntariado_backend/internals/constants"
	enrollmentModel "voluntariado_backend/internals/features/enrollments/model"
	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
	"voluntariado_backend/internals/features/reports/dto"
	userModel "voluntariado_backend/internals/features/users/model"
)

// Motor de agregação: funções puras sobre linhas já buscadas. Nenhuma toca o
// banco nem guarda estado — o controller busca, aqui só se deriva.

const trendWindowMonths = 6

// BuildUserStats monta o resumo do dashboard pessoal.
// Duração nula/ausente conta como 0; os dois totais globais chegam prontos
// (COUNT e COUNT DISTINCT são do banco, não daqui).
func BuildUserStats(now time.Time, enrollments []enrollmentModel.EnrollmentModel, totalOpportunities, totalVolunteers int64) dto.UserStatsResponse {
	out := dto.UserStatsResponse{
		TotalOpportunities: totalOpportunities,
		TotalVolunteers:    totalVolunteers,
	}
	for i := range enrollments {
		if enrollments[i].Opportunity.IsPast(now) {
			out.Completed++
			out.MyHours += enrollments[i].Opportunity.OpportunityDurationHours
		} else {
			out.Upcoming++
		}
	}
	return out
}

// BuildGlobalImpact combina as quatro seções independentes do relatório
// global. enrollments precisam vir com Opportunity carregada; opportunities
// com VolunteerType; userNames mapeia CPF → nome de exibição.
func BuildGlobalImpact(
	now time.Time,
	enrollments []enrollmentModel.EnrollmentModel,
	opportunities []opportunityModel.OpportunityModel,
	userNames map[string]string,
) dto.GlobalImpactResponse {
	out := dto.GlobalImpactResponse{
		MonthlyTrend: emptyTrend(now),
		Geography:    dto.GeographyMix{Cities: map[string]int{}},
		Categories:   map[string]int{},
	}

	// a. totais
	volunteers := map[string]struct{}{}
	for i := range enrollments {
		e := &enrollments[i]
		volunteers[e.EnrollmentUserCPF] = struct{}{}
		if e.Opportunity.IsPast(now) {
			// horas realmente entregues: uma parcela por inscrição
			out.Totals.TotalHours += e.Opportunity.OpportunityDurationHours
		}
	}
	out.Totals.TotalVolunteers = len(volunteers)
	out.Totals.TotalOpportunities = len(opportunities)
	for i := range opportunities {
		if opportunities[i].IsPast(now) {
			out.Totals.CompletedOpportunities++
		}
	}

	// b. tendência mensal (janela de 6 meses, mais antigo primeiro)
	for i := range enrollments {
		e := &enrollments[i]
		idx := trendBucketIndex(now, e.EnrollmentCreatedAt)
		if idx < 0 || idx >= trendWindowMonths {
			continue
		}
		out.MonthlyTrend[idx].Volunteers++
		out.MonthlyTrend[idx].Hours += e.Opportunity.OpportunityDurationHours
	}

	// c. top-5 por número de inscrições
	out.TopVolunteers = topVolunteers(enrollments, userNames, 5)

	// d. geografia + mix de categorias
	for i := range opportunities {
		o := &opportunities[i]
		if city, online := CityFromLocation(o.OpportunityLocation); online {
			out.Geography.Online++
		} else if city != "" {
			out.Geography.Cities[city]++
		}

		label := o.VolunteerType.VolunteerTypeLabel
		if label == "" {
			label = constants.OtherCategoryLabel
		}
		out.Categories[label]++
	}

	return out
}

// BuildProfile monta o histórico completo + retrospectiva do ano corrente.
// rows chegam com Opportunity.Institution e Opportunity.VolunteerType.
func BuildProfile(now time.Time, user *userModel.UserModel, rows []enrollmentModel.EnrollmentModel) dto.ProfileResponse {
	// histórico sai do mais recente para o mais antigo
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Opportunity.OpportunityEventAt.After(rows[j].Opportunity.OpportunityEventAt)
	})

	out := dto.ProfileResponse{
		User: dto.ProfileUser{
			ID:    user.UserCPF,
			Name:  user.UserName,
			Email: user.UserEmail,
		},
		Retrospective: dto.Retrospective{
			Year:          now.Year(),
			FavoriteCause: constants.NoFavoriteCause,
		},
		History: make([]dto.HistoryEntry, 0, len(rows)),
	}

	tally := map[string]int{}
	best := 0

	for i := range rows {
		e := &rows[i]
		opp := &e.Opportunity

		category := opp.VolunteerType.VolunteerTypeLabel
		if category == "" {
			category = constants.OtherCategoryLabel
		}

		status := constants.EnrollmentStatusEnrolled
		if opp.IsPast(now) {
			status = constants.EnrollmentStatusCompleted
			out.Completed++
			out.TotalHours += opp.OpportunityDurationHours

			if opp.OpportunityEventAt.Year() == now.Year() {
				out.Retrospective.Activities++
				out.Retrospective.Hours += opp.OpportunityDurationHours
				tally[category]++
				// empate: a primeira categoria a atingir o máximo vence
				if tally[category] > best {
					best = tally[category]
					out.Retrospective.FavoriteCause = category
				}
			}
		} else {
			out.Upcoming++
		}

		out.History = append(out.History, dto.HistoryEntry{
			ID:          opp.OpportunityID,
			Title:       opp.OpportunityTitle,
			Date:        opp.OpportunityEventAt,
			Status:      status,
			Category:    category,
			Institution: opp.Institution.InstitutionName,
		})
	}

	return out
}

// CityFromLocation aplica a regra de geografia: se o texto contém "online"
// (case-insensitive) a oportunidade é remota; senão a cidade é o trecho antes
// da primeira vírgula, com espaços aparados.
func CityFromLocation(location string) (city string, online bool) {
	if strings.Contains(strings.ToLower(location), "online") {
		return "", true
	}
	city = location
	if idx := strings.Index(location, ","); idx >= 0 {
		city = location[:idx]
	}
	return strings.TrimSpace(city), false
}

// trendBucketIndex converte o timestamp de inscrição no índice do bucket
// mensal. A distância usa (ano, mês) completos, então a conta fecha em virada
// de ano; fora da janela devolve índice inválido e a linha é ignorada.
func trendBucketIndex(now, enrolledAt time.Time) int {
	dist := (now.Year()-enrolledAt.Year())*12 + int(now.Month()) - int(enrolledAt.Month())
	return trendWindowMonths - 1 - dist
}

func emptyTrend(now time.Time) []dto.MonthBucket {
	buckets := make([]dto.MonthBucket, trendWindowMonths)
	for i := 0; i < trendWindowMonths; i++ {
		// time.Date normaliza mês negativo, então a virada de ano sai certa
		m := time.Date(now.Year(), now.Month()-time.Month(trendWindowMonths-1-i), 1, 0, 0, 0, 0, now.Location())
		buckets[i].Month = m.Format("Jan")
	}
	return buckets
}

func topVolunteers(enrollments []enrollmentModel.EnrollmentModel, userNames map[string]string, limit int) []dto.TopVolunteer {
	counts := map[string]int{}
	for i := range enrollments {
		counts[enrollments[i].EnrollmentUserCPF]++
	}

	type ranked struct {
		cpf   string
		count int
	}
	all := make([]ranked, 0, len(counts))
	for cpf, n := range counts {
		all = append(all, ranked{cpf: cpf, count: n})
	}
	// desc por contagem; CPF desempata só para saída determinística
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].cpf < all[j].cpf
	})

	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]dto.TopVolunteer, 0, len(all))
	for _, r := range all {
		name := userNames[r.cpf]
		if name == "" {
			name = constants.AnonymousVolunteerName
		}
		out = append(out, dto.TopVolunteer{Name: name, Count: r.count})
	}
	return out
}
