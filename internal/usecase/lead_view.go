package usecase

import (
	"strings"

	"github.com/xavierca1/leadboard/internal/entity"
)

// StatusAll desliga o filtro de status na listagem.
const StatusAll = "all"

// ComputeStats agrega a coleção por status. Puro, O(n).
func ComputeStats(leads []entity.Lead) entity.LeadStats {
	stats := entity.LeadStats{Total: len(leads)}

	for _, lead := range leads {
		switch lead.Status {
		case entity.StatusNew:
			stats.New++
		case entity.StatusContacted:
			stats.Contacted++
		case entity.StatusConverted:
			stats.Converted++
		}
	}

	return stats
}

// FilterLeads devolve os leads que casam com a busca e com o filtro de
// status, preservando a ordem relativa da coleção de entrada. Função pura:
// nunca modifica o slice recebido, sempre devolve um slice novo.
func FilterLeads(leads []entity.Lead, query, status string) []entity.Lead {
	filtered := make([]entity.Lead, 0, len(leads))
	q := strings.ToLower(query)

	for _, lead := range leads {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(lead.Name), q) ||
			strings.Contains(strings.ToLower(lead.Email), q)

		matchesStatus := status == "" || status == StatusAll || lead.Status == status

		if matchesSearch && matchesStatus {
			filtered = append(filtered, lead)
		}
	}

	return filtered
}
