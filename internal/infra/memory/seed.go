package memory

import (
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
)

// SeedLeads é o fixture de desenvolvimento. Em produção a coleção vem do
// Postgres; aqui ela imita a resposta da futura API.
func SeedLeads() []entity.Lead {
	return []entity.Lead{
		{
			ID:        "8a4c2f1e-3b7d-4e9a-9c1f-5d2b8e6a0f31",
			Name:      "Mariana Costa",
			Email:     "mariana.costa@solartech.com.br",
			Phone:     "(11) 98765-4321",
			Company:   "SolarTech",
			Source:    entity.SourceWebsite,
			Status:    entity.StatusNew,
			Notes:     "",
			CreatedAt: mustParse("2025-07-02T09:15:00Z"),
			UpdatedAt: mustParse("2025-07-02T09:15:00Z"),
		},
		{
			ID:        "b3e91d07-52c8-47f2-8a6e-1f9d3c4b7a82",
			Name:      "Rafael Almeida",
			Email:     "rafael@almeidaconsultoria.com",
			Phone:     "(21) 99911-2233",
			Company:   "Almeida Consultoria",
			Source:    entity.SourceContactForm,
			Status:    entity.StatusContacted,
			Notes:     "Pediu proposta para o plano anual.",
			CreatedAt: mustParse("2025-07-05T14:30:00Z"),
			UpdatedAt: mustParse("2025-07-11T10:05:00Z"),
		},
		{
			ID:        "c7f52a39-8e14-4b6d-a2c5-9d0e6f3b1c48",
			Name:      "Juliana Pereira",
			Email:     "juliana.pereira@gmail.com",
			Source:    entity.SourceReferral,
			Status:    entity.StatusConverted,
			Notes:     "Indicada pelo Rafael. Fechou no primeiro contato.",
			CreatedAt: mustParse("2025-07-08T11:00:00Z"),
			UpdatedAt: mustParse("2025-07-09T16:45:00Z"),
		},
		{
			ID:        "d1a86e24-6c93-4f7b-b8d0-2e5f9a1c3d67",
			Name:      "Carlos Eduardo Santos",
			Email:     "carlos.santos@nexuslog.com.br",
			Phone:     "(31) 98822-7744",
			Company:   "Nexus Logística",
			Source:    entity.SourceWebsite,
			Status:    entity.StatusNew,
			Notes:     "",
			CreatedAt: mustParse("2025-07-12T08:20:00Z"),
			UpdatedAt: mustParse("2025-07-12T08:20:00Z"),
		},
		{
			ID:        "e9b04c58-1f72-4a3e-9d6b-7c8a2e5f0d19",
			Name:      "Fernanda Lima",
			Email:     "fernanda@limaarquitetura.com",
			Phone:     "(41) 99655-8800",
			Company:   "Lima Arquitetura",
			Source:    entity.SourceContactForm,
			Status:    entity.StatusContacted,
			Notes:     "Retornar na segunda-feira.",
			CreatedAt: mustParse("2025-07-15T13:40:00Z"),
			UpdatedAt: mustParse("2025-07-18T09:10:00Z"),
		},
		{
			ID:        "f2c63b71-9d05-4e8a-8b4f-3a1d7c9e5f20",
			Name:      "Thiago Oliveira",
			Email:     "thiago.oliveira@hotmail.com",
			Source:    entity.SourceWebsite,
			Status:    entity.StatusNew,
			Notes:     "",
			CreatedAt: mustParse("2025-07-19T17:55:00Z"),
			UpdatedAt: mustParse("2025-07-19T17:55:00Z"),
		},
		{
			ID:        "a5d17f83-4b26-49c1-a7e9-8f0b3d6c2e54",
			Name:      "Patrícia Rocha",
			Email:     "patricia.rocha@vertex.com.br",
			Phone:     "(51) 98433-1122",
			Company:   "Vertex Sistemas",
			Source:    entity.SourceReferral,
			Status:    entity.StatusConverted,
			Notes:     "Upgrade para o plano empresarial em negociação.",
			CreatedAt: mustParse("2025-07-21T10:25:00Z"),
			UpdatedAt: mustParse("2025-07-28T15:30:00Z"),
		},
		{
			ID:        "b8e29d46-7a51-4c3f-9e0d-1b6f4a8c3e75",
			Name:      "Lucas Martins",
			Email:     "lucas.martins@bravafoods.com.br",
			Phone:     "(19) 99744-5566",
			Company:   "Brava Foods",
			Source:    entity.SourceContactForm,
			Status:    entity.StatusContacted,
			Notes:     "Aguardando aprovação do orçamento interno.",
			CreatedAt: mustParse("2025-07-24T12:00:00Z"),
			UpdatedAt: mustParse("2025-07-26T11:20:00Z"),
		},
	}
}

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
